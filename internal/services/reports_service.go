package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
	"tourtravel/internal/logging"
	"tourtravel/internal/repositories"
	"tourtravel/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	sheetBookings = "Bookings"
	sheetSummary  = "Summary"
)

var bookingHeaders = []string{
	"Booking ID", "User ID", "Package", "Travel Date", "Travelers",
	"Phone", "Email", "Total Price", "Status", "Created At",
}

// ReportsService builds the admin bookings export.
type ReportsService struct {
	DB        *sqlx.DB
	Log       zerolog.Logger
	RequestID string
	Now       func() time.Time
}

// ExportBookings returns an xlsx workbook with every booking, newest first,
// plus a per-status summary sheet.
func (s ReportsService) ExportBookings(ctx context.Context) ([]byte, string, error) {
	rows, err := repositories.BookingRepository{DB: s.DB}.ListAll(ctx)
	if err != nil {
		return nil, "", storeErr(err, "booking")
	}
	out, err := buildBookingsWorkbook(rows)
	if err != nil {
		logging.Event(s.Log.Error(), s.RequestID, "reports", "export_bookings").Err(err).Msg("workbook failed")
		return nil, "", domain.InternalError{Msg: "failed to build export", Err: err}
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	logging.Event(s.Log.Info(), s.RequestID, "reports", "export_bookings").Int("rows", len(rows)).Msg("export built")
	return out, fmt.Sprintf("bookings_%s.xlsx", now.Format("20060102_150405")), nil
}

type statusTotal struct {
	count int
	sum   decimal.Decimal
}

func buildBookingsWorkbook(rows []models.BookingDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetBookings); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheetBookings, "A1", &bookingHeaders); err != nil {
		return nil, err
	}

	totals := map[string]*statusTotal{}
	for i, b := range rows {
		status := b.Status
		if st, ok := domain.ParseBookingStatus(b.Status); ok {
			status = string(st)
		}
		price, _ := b.TotalPrice.Float64()
		row := []any{
			b.BookingID, b.UserID, b.PackageTitle, b.TravelDate, b.NumTravelers,
			b.Phone, b.Email, price, status, utils.FormatDateTime(b.CreatedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetBookings, cell, &row); err != nil {
			return nil, err
		}

		t, ok := totals[status]
		if !ok {
			t = &statusTotal{}
			totals[status] = t
		}
		t.count++
		t.sum = t.sum.Add(b.TotalPrice)
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheetSummary, "A1", &[]any{"Status", "Bookings", "Total Price"}); err != nil {
		return nil, err
	}
	statuses := make([]string, 0, len(totals))
	for st := range totals {
		statuses = append(statuses, st)
	}
	sort.Strings(statuses)
	for i, st := range statuses {
		sum, _ := totals[st].sum.Float64()
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetSummary, cell, &[]any{st, totals[st].count, sum}); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
