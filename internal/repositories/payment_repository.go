package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain/models"
)

const paymentSelect = `
	SELECT id, booking_id, user_id, amount,
	       COALESCE(currency, '') AS currency,
	       COALESCE(cus_name, '') AS cus_name,
	       COALESCE(cus_email, '') AS cus_email,
	       COALESCE(cus_phone, '') AS cus_phone,
	       payment_date,
	       COALESCE(payment_status, '') AS payment_status,
	       COALESCE(payment_method, '') AS payment_method,
	       transaction_id
	FROM payments`

type PaymentRepository struct {
	DB intdb.DBTX
}

func (r PaymentRepository) Create(ctx context.Context, p models.Payment) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO payments (
			booking_id, user_id, amount, currency, cus_name, cus_email, cus_phone,
			payment_date, payment_status, payment_method, transaction_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.BookingID, p.UserID, p.Amount, p.Currency, p.CusName, p.CusEmail, p.CusPhone,
		p.PaymentDate, p.PaymentStatus, p.PaymentMethod, p.TransactionID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert payment %s: %w", p.TransactionID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("payment last insert id: %w", err)
	}
	return id, nil
}

// BookingIDByTransaction locks the payment row of tranID and returns its booking.
func (r PaymentRepository) BookingIDByTransaction(ctx context.Context, tranID string) (int64, error) {
	var bookingID int64
	err := r.DB.GetContext(ctx, &bookingID,
		`SELECT booking_id FROM payments WHERE transaction_id = ? LIMIT 1 FOR UPDATE`, tranID)
	if err != nil {
		return 0, fmt.Errorf("find payment %s: %w", tranID, err)
	}
	return bookingID, nil
}

func (r PaymentRepository) UpdateStatusByTransaction(ctx context.Context, tranID, status string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE payments SET payment_status = ? WHERE transaction_id = ?`, status, tranID)
	if err != nil {
		return 0, fmt.Errorf("update payment %s status: %w", tranID, err)
	}
	return res.RowsAffected()
}

func (r PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	out := []models.Payment{}
	if err := r.DB.SelectContext(ctx, &out, paymentSelect); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return out, nil
}

func (r PaymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	if err := r.DB.SelectContext(ctx, &out, paymentSelect+` WHERE cus_email = ?`, email); err != nil {
		return nil, fmt.Errorf("list payments of %s: %w", email, err)
	}
	return out, nil
}

func (r PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.Payment, error) {
	out := []models.Payment{}
	if err := r.DB.SelectContext(ctx, &out, paymentSelect+` WHERE booking_id = ? ORDER BY payment_date`, bookingID); err != nil {
		return nil, fmt.Errorf("list payments of booking %d: %w", bookingID, err)
	}
	return out, nil
}

func (r PaymentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete payment %d: %w", id, err)
	}
	return res.RowsAffected()
}

func (r PaymentRepository) DeleteByBooking(ctx context.Context, bookingID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE booking_id = ?`, bookingID)
	if err != nil {
		return 0, fmt.Errorf("delete payments of booking %d: %w", bookingID, err)
	}
	return res.RowsAffected()
}
