package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"tourtravel/internal/domain/models"
	"tourtravel/internal/logging"
	"tourtravel/internal/repositories"
	"tourtravel/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DocsService renders the booking invoice PDF.
type DocsService struct {
	DB        *sqlx.DB
	Currency  string
	Log       zerolog.Logger
	RequestID string
	Loader    func(ctx context.Context, bookingID int64) (invoiceData, error)
	Now       func() time.Time
}

type invoiceData struct {
	Booking  models.BookingDetail
	Payments []models.Payment
}

// GenerateInvoice returns the PDF bytes and a download file name.
func (s DocsService) GenerateInvoice(ctx context.Context, bookingID int64) ([]byte, string, error) {
	data, err := s.loadInvoiceData(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	logging.Event(s.Log.Info(), s.RequestID, "docs", "generate_invoice").Int64("booking_id", bookingID).Msg("invoice rendered")

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return buildInvoicePDF(data, s.currency(data), now)
}

func (s DocsService) loadInvoiceData(ctx context.Context, bookingID int64) (invoiceData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	d, err := repositories.BookingRepository{DB: s.DB}.GetDetail(ctx, bookingID)
	if err != nil {
		return invoiceData{}, storeErr(err, "booking")
	}
	payments, err := repositories.PaymentRepository{DB: s.DB}.ListByBooking(ctx, bookingID)
	if err != nil {
		return invoiceData{}, storeErr(err, "payment")
	}
	return invoiceData{Booking: d, Payments: payments}, nil
}

// currency prefers what the customer actually paid in.
func (s DocsService) currency(d invoiceData) string {
	for _, p := range d.Payments {
		if c := strings.TrimSpace(p.Currency); c != "" {
			return c
		}
	}
	return s.Currency
}

func buildInvoicePDF(d invoiceData, currency string, now time.Time) ([]byte, string, error) {
	b := d.Booking

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d-%s", b.BookingID, b.CreatedAt.Format("20060102"))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+utils.FormatDateTime(now))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(b.Email, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(b.Phone, "-")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Booking:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Package     : %s", safe(b.PackageTitle, "-")),
		fmt.Sprintf("Travel date : %s", safe(b.TravelDate, "-")),
		fmt.Sprintf("Travelers   : %d", b.NumTravelers),
		fmt.Sprintf("Status      : %s", safe(b.Status, "Pending")),
		fmt.Sprintf("Booking ID  : #%d", b.BookingID),
	}
	for _, s := range lines {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(d.Payments) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Payments:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		paid := decimal.Zero
		for i, p := range d.Payments {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d) %s  %s  %s  %s",
				i+1, utils.FormatDate(p.PaymentDate), p.TransactionID,
				utils.FormatMoney(p.Amount, p.Currency), safe(p.PaymentStatus, "-")), "", "", false)
			if strings.EqualFold(p.PaymentStatus, "success") {
				paid = paid.Add(p.Amount)
			}
		}
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, "Paid: "+utils.FormatMoney(paid, currency))
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(b.TotalPrice, currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("This invoice covers %d traveler(s) for the package above.", b.NumTravelers), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", b.BookingID, utils.SafeFilenamePart(b.PackageTitle))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
