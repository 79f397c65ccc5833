package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is one gateway initiation attempt for a booking.
type Payment struct {
	ID            int64           `db:"id" json:"id"`
	BookingID     int64           `db:"booking_id" json:"booking_id"`
	UserID        int64           `db:"user_id" json:"user_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Currency      string          `db:"currency" json:"currency"`
	CusName       string          `db:"cus_name" json:"cus_name"`
	CusEmail      string          `db:"cus_email" json:"cus_email"`
	CusPhone      string          `db:"cus_phone" json:"cus_phone"`
	PaymentDate   time.Time       `db:"payment_date" json:"payment_date"`
	PaymentStatus string          `db:"payment_status" json:"payment_status"`
	PaymentMethod string          `db:"payment_method" json:"payment_method"`
	TransactionID string          `db:"transaction_id" json:"transaction_id"`
}

// PaymentInit is the caller's request to start a gateway payment.
type PaymentInit struct {
	BookingID     int64           `json:"booking_id"`
	UserID        int64           `json:"user_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CusName       string          `json:"cus_name"`
	CusEmail      string          `json:"cus_email"`
	CusPhone      string          `json:"cus_phone"`
	PaymentStatus string          `json:"payment_status"`
}
