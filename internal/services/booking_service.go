package services

import (
	"context"
	"fmt"
	"strings"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
	"tourtravel/internal/logging"
	"tourtravel/internal/metrics"
	"tourtravel/internal/repositories"
	"tourtravel/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// BookingService owns the booking status field and its transitions.
type BookingService struct {
	DB        *sqlx.DB
	Policy    domain.TransitionPolicy
	Log       zerolog.Logger
	RequestID string
}

func (s BookingService) bookings() repositories.BookingRepository {
	return repositories.BookingRepository{DB: s.DB}
}

// Create validates the seven booking fields and stores a Pending booking.
func (s BookingService) Create(ctx context.Context, in models.NewBooking) (int64, error) {
	in.TravelDate = strings.TrimSpace(in.TravelDate)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)

	if err := requireFields(
		fieldCheck{"userId", in.UserID > 0},
		fieldCheck{"packageId", in.PackageID > 0},
		fieldCheck{"travelDate", present(in.TravelDate)},
		fieldCheck{"numTravelers", in.NumTravelers > 0},
		fieldCheck{"phone", present(in.Phone)},
		fieldCheck{"email", present(in.Email)},
		fieldCheck{"totalPrice", in.TotalPrice.IsPositive()},
	); err != nil {
		return 0, err
	}
	if _, err := utils.ParseDate(in.TravelDate); err != nil {
		return 0, domain.ValidationError{Field: "travelDate", Msg: "expected YYYY-MM-DD", Err: err}
	}

	id, err := s.bookings().Create(ctx, in, domain.StatusPending)
	if err != nil {
		logging.Event(s.Log.Error(), s.RequestID, "booking", "create").Err(err).Msg("insert failed")
		return 0, domain.InternalError{Msg: "database error", Err: err}
	}
	return id, nil
}

func (s BookingService) ListForUser(ctx context.Context, userID int64) ([]models.BookingDetail, error) {
	out, err := s.bookings().ListByUser(ctx, userID)
	return out, storeErr(err, "booking")
}

// ListAll is the admin view, newest first.
func (s BookingService) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	out, err := s.bookings().ListAll(ctx)
	return out, storeErr(err, "booking")
}

func (s BookingService) Detail(ctx context.Context, id int64) (models.BookingDetail, error) {
	d, err := s.bookings().GetDetail(ctx, id)
	return d, storeErr(err, "booking")
}

// Apply moves booking id along action. A missing booking is NotFound and
// nothing is written; a status that changed between read and write is a
// ConflictError.
func (s BookingService) Apply(ctx context.Context, id int64, action domain.BookingAction) (domain.BookingStatus, error) {
	repo := s.bookings()
	raw, err := repo.GetStatus(ctx, id)
	if err != nil {
		return "", storeErr(err, "booking")
	}

	next, err := transition(s.Policy, raw, action)
	if err != nil {
		return "", err
	}

	n, err := repo.UpdateStatus(ctx, id, raw, next)
	if err != nil {
		logging.Event(s.Log.Error(), s.RequestID, "booking", string(action)).Int64("booking_id", id).Err(err).Msg("status update failed")
		return "", domain.InternalError{Msg: "database error", Err: err}
	}
	if n == 0 {
		return "", domain.ConflictError{Resource: "booking", Msg: "status changed concurrently, retry"}
	}

	metrics.IncTransition(string(action), string(next))
	logging.Event(s.Log.Info(), s.RequestID, "booking", string(action)).
		Int64("booking_id", id).Str("from", raw).Str("to", string(next)).Msg("status changed")
	return next, nil
}

// Delete removes the booking's payments and then the booking itself in one
// transaction.
func (s BookingService) Delete(ctx context.Context, id int64) error {
	err := intdb.WithTx(ctx, s.DB, func(tx *sqlx.Tx) error {
		bookings := repositories.BookingRepository{DB: tx}
		payments := repositories.PaymentRepository{DB: tx}

		ok, err := bookings.Exists(ctx, id)
		if err != nil {
			return domain.InternalError{Msg: "database error", Err: err}
		}
		if !ok {
			return domain.NotFoundError{Resource: "booking"}
		}
		removed, err := payments.DeleteByBooking(ctx, id)
		if err != nil {
			return domain.InternalError{Msg: "database error", Err: err}
		}
		if _, err := bookings.Delete(ctx, id); err != nil {
			return domain.InternalError{Msg: "database error", Err: err}
		}
		logging.Event(s.Log.Info(), s.RequestID, "booking", "delete").
			Int64("booking_id", id).Int64("payments_removed", removed).Msg("booking deleted")
		return nil
	})
	if err != nil && domain.IsInternal(err) {
		logging.Event(s.Log.Error(), s.RequestID, "booking", "delete").Int64("booking_id", id).Err(err).Msg("delete failed")
	}
	return err
}

// transition resolves the stored label and applies the policy. Under the
// permissive policy an unrecognised label is still overwritten.
func transition(policy domain.TransitionPolicy, raw string, action domain.BookingAction) (domain.BookingStatus, error) {
	current, ok := domain.ParseBookingStatus(raw)
	if !ok {
		if policy == domain.PolicyStrict {
			return "", domain.TransitionRejectedError{From: domain.BookingStatus(raw), Action: action}
		}
		current = domain.BookingStatus(raw)
	}
	next, err := domain.Transition(policy, current, action)
	if err != nil {
		return "", fmt.Errorf("booking %s: %w", action, err)
	}
	return next, nil
}
