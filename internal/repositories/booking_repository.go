package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
)

const bookingDetailSelect = `
	SELECT
		b.id AS booking_id,
		b.user_id,
		DATE_FORMAT(b.travel_date, '%Y-%m-%d') AS travel_date,
		b.num_travelers,
		COALESCE(b.phone, '') AS phone,
		COALESCE(b.email, '') AS email,
		b.total_price,
		COALESCE(b.status, '') AS status,
		b.created_at,
		p.title AS package_title,
		COALESCE(p.image, '') AS package_image
	FROM bookings b
	JOIN packages p ON b.package_id = p.id`

type BookingRepository struct {
	DB intdb.DBTX
}

// Create inserts a booking and returns its id.
func (r BookingRepository) Create(ctx context.Context, b models.NewBooking, status domain.BookingStatus) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings (user_id, package_id, travel_date, num_travelers, phone, email, total_price, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`,
		b.UserID, b.PackageID, b.TravelDate, b.NumTravelers, b.Phone, b.Email, b.TotalPrice, string(status),
	)
	if err != nil {
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("booking last insert id: %w", err)
	}
	return id, nil
}

func (r BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	out := []models.BookingDetail{}
	if err := r.DB.SelectContext(ctx, &out, bookingDetailSelect+` WHERE b.user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("list bookings of user %d: %w", userID, err)
	}
	return out, nil
}

// ListAll returns every booking, newest first.
func (r BookingRepository) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	out := []models.BookingDetail{}
	if err := r.DB.SelectContext(ctx, &out, bookingDetailSelect+` ORDER BY b.created_at DESC`); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

// GetDetail returns sql.ErrNoRows (wrapped) when the booking does not exist.
func (r BookingRepository) GetDetail(ctx context.Context, id int64) (models.BookingDetail, error) {
	var d models.BookingDetail
	if err := r.DB.GetContext(ctx, &d, bookingDetailSelect+` WHERE b.id = ?`, id); err != nil {
		return models.BookingDetail{}, fmt.Errorf("get booking %d: %w", id, err)
	}
	return d, nil
}

// GetStatus returns the raw stored status label of a booking.
func (r BookingRepository) GetStatus(ctx context.Context, id int64) (string, error) {
	var status string
	if err := r.DB.GetContext(ctx, &status, `SELECT COALESCE(status, '') FROM bookings WHERE id = ?`, id); err != nil {
		return "", fmt.Errorf("get booking %d status: %w", id, err)
	}
	return status, nil
}

// GetStatusForUpdate is GetStatus with a row lock; only meaningful inside a transaction.
func (r BookingRepository) GetStatusForUpdate(ctx context.Context, id int64) (string, error) {
	var status string
	if err := r.DB.GetContext(ctx, &status, `SELECT COALESCE(status, '') FROM bookings WHERE id = ? FOR UPDATE`, id); err != nil {
		return "", fmt.Errorf("lock booking %d: %w", id, err)
	}
	return status, nil
}

// UpdateStatus writes to only if the stored status still equals from.
// It returns the number of matched rows.
func (r BookingRepository) UpdateStatus(ctx context.Context, id int64, from string, to domain.BookingStatus) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ? AND COALESCE(status, '') = ?`,
		string(to), id, from,
	)
	if err != nil {
		return 0, fmt.Errorf("update booking %d status: %w", id, err)
	}
	return res.RowsAffected()
}

func (r BookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	if err := r.DB.GetContext(ctx, &n, `SELECT COUNT(*) FROM bookings WHERE id = ?`, id); err != nil {
		return false, fmt.Errorf("check booking %d: %w", id, err)
	}
	return n > 0, nil
}

func (r BookingRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete booking %d: %w", id, err)
	}
	return res.RowsAffected()
}
