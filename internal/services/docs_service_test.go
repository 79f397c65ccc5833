package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDetail() models.BookingDetail {
	return models.BookingDetail{
		BookingID:    10,
		UserID:       3,
		TravelDate:   "2025-06-01",
		NumTravelers: 2,
		Phone:        "017",
		Email:        "a@b.test",
		TotalPrice:   decimal.NewFromInt(12500),
		Status:       "Confirmed",
		CreatedAt:    time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
		PackageTitle: "Cox's Bazar Getaway",
	}
}

func TestDocsServiceGenerateInvoice(t *testing.T) {
	loader := func(_ context.Context, id int64) (invoiceData, error) {
		return invoiceData{
			Booking: sampleDetail(),
			Payments: []models.Payment{{
				BookingID: id, Amount: decimal.NewFromInt(12500), Currency: "BDT",
				PaymentDate: time.Now(), PaymentStatus: "success", TransactionID: "tran_1",
			}},
		}, nil
	}

	svc := DocsService{Loader: loader, Currency: "USD", Log: zerolog.Nop()}
	pdf, filename, err := svc.GenerateInvoice(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "INVOICE_10_Cox's_Bazar_Getaway.pdf", filename)
	assert.Equal(t, "BDT", svc.currency(invoiceData{Payments: []models.Payment{{Currency: "BDT"}}}))
	assert.Equal(t, "USD", svc.currency(invoiceData{}))
}

func TestDocsServiceMissingBooking(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("WHERE b.id = ").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

	_, _, err := DocsService{DB: db, Log: zerolog.Nop()}.GenerateInvoice(context.Background(), 404)
	assert.True(t, domain.IsNotFound(err))
}

func TestBuildBookingsWorkbook(t *testing.T) {
	older := sampleDetail()
	legacy := sampleDetail()
	legacy.BookingID = 11
	legacy.Status = "confirmed"
	pending := sampleDetail()
	pending.BookingID = 12
	pending.Status = ""
	pending.TotalPrice = decimal.RequireFromString("999.50")

	raw, err := buildBookingsWorkbook([]models.BookingDetail{pending, legacy, older})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(sheetBookings, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Booking ID", header)

	first, err := f.GetCellValue(sheetBookings, "A2")
	require.NoError(t, err)
	assert.Equal(t, "12", first)

	status, err := f.GetCellValue(sheetBookings, "I2")
	require.NoError(t, err)
	assert.Equal(t, "Pending", status)

	rows, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Confirmed", "2", "25000"}, rows[1])
	assert.True(t, strings.HasPrefix(rows[2][0], "Pending"))
}

func TestReportsExportFilename(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("ORDER BY b.created_at DESC").WillReturnRows(sqlmock.NewRows(bookingDetailCols))

	svc := ReportsService{DB: db, Log: zerolog.Nop(), Now: func() time.Time {
		return time.Date(2025, 7, 4, 10, 30, 0, 0, time.UTC)
	}}
	raw, name, err := svc.ExportBookings(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "bookings_20250704_103000.xlsx", name)
}

var bookingDetailCols = []string{
	"booking_id", "user_id", "travel_date", "num_travelers", "phone", "email",
	"total_price", "status", "created_at", "package_title", "package_image",
}
