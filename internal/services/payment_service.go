package services

import (
	"context"
	"strings"
	"time"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
	"tourtravel/internal/gateway"
	"tourtravel/internal/logging"
	"tourtravel/internal/metrics"
	"tourtravel/internal/repositories"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// PaymentGateway is the part of the gateway client the payment workflow needs.
type PaymentGateway interface {
	Initiate(ctx context.Context, req gateway.InitiateRequest) (gateway.InitiateResponse, error)
	Validate(ctx context.Context, valID string) (gateway.ValidationResponse, error)
}

// PaymentService translates gateway outcomes into payment and booking state.
type PaymentService struct {
	DB        *sqlx.DB
	Gateway   PaymentGateway
	Policy    domain.TransitionPolicy
	Currency  string
	Log       zerolog.Logger
	RequestID string

	// Now and NewTransactionID are overridable in tests.
	Now              func() time.Time
	NewTransactionID func() string
}

// InitiateResult is what the caller needs to send the browser to the gateway.
type InitiateResult struct {
	GatewayPageURL string
	TransactionID  string
	PaymentID      int64
}

func (s PaymentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// newTransactionID returns a time-ordered unique id for one initiation attempt.
func (s PaymentService) newTransactionID() string {
	if s.NewTransactionID != nil {
		return s.NewTransactionID()
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "tran_" + strings.ReplaceAll(id.String(), "-", "")
}

// Initiate opens a gateway session for a booking and records a payment row.
// Nothing is stored unless the gateway hands back a page URL.
func (s PaymentService) Initiate(ctx context.Context, in models.PaymentInit) (InitiateResult, error) {
	in.CusName = strings.TrimSpace(in.CusName)
	in.CusEmail = strings.TrimSpace(in.CusEmail)
	in.CusPhone = strings.TrimSpace(in.CusPhone)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if err := requireFields(
		fieldCheck{"booking_id", in.BookingID > 0},
		fieldCheck{"user_id", in.UserID > 0},
		fieldCheck{"amount", in.Amount.IsPositive()},
		fieldCheck{"cus_name", present(in.CusName)},
		fieldCheck{"cus_email", present(in.CusEmail)},
		fieldCheck{"cus_phone", present(in.CusPhone)},
	); err != nil {
		return InitiateResult{}, err
	}
	if in.Currency == "" {
		in.Currency = s.Currency
	}
	status := strings.TrimSpace(in.PaymentStatus)
	if status == "" {
		status = domain.PaymentPending
	}

	ok, err := repositories.BookingRepository{DB: s.DB}.Exists(ctx, in.BookingID)
	if err != nil {
		return InitiateResult{}, domain.InternalError{Msg: "database error", Err: err}
	}
	if !ok {
		return InitiateResult{}, domain.NotFoundError{Resource: "booking"}
	}

	tranID := s.newTransactionID()
	resp, err := s.Gateway.Initiate(ctx, gateway.InitiateRequest{
		TransactionID: tranID,
		Amount:        in.Amount,
		Currency:      in.Currency,
		CusName:       in.CusName,
		CusEmail:      in.CusEmail,
		CusPhone:      in.CusPhone,
	})
	if err != nil {
		metrics.IncGateway("initiate", "error")
		logging.Event(s.Log.Error(), s.RequestID, "payment", "initiate").
			Str("tran_id", tranID).Int64("booking_id", in.BookingID).Err(err).Msg("gateway initiation failed")
		if !domain.IsGateway(err) {
			err = domain.GatewayError{Kind: domain.GatewayUnreachable, Err: err}
		}
		return InitiateResult{}, err
	}
	metrics.IncGateway("initiate", "ok")

	paymentID, err := repositories.PaymentRepository{DB: s.DB}.Create(ctx, models.Payment{
		BookingID:     in.BookingID,
		UserID:        in.UserID,
		Amount:        in.Amount,
		Currency:      in.Currency,
		CusName:       in.CusName,
		CusEmail:      in.CusEmail,
		CusPhone:      in.CusPhone,
		PaymentDate:   s.now(),
		PaymentStatus: status,
		PaymentMethod: domain.PaymentMethodGateway,
		TransactionID: tranID,
	})
	if err != nil {
		logging.Event(s.Log.Error(), s.RequestID, "payment", "initiate").
			Str("tran_id", tranID).Err(err).Msg("saving payment failed")
		return InitiateResult{}, domain.InternalError{Msg: "failed to save payment data", Err: err}
	}

	logging.Event(s.Log.Info(), s.RequestID, "payment", "initiate").
		Str("tran_id", tranID).Int64("booking_id", in.BookingID).Int64("payment_id", paymentID).Msg("payment initiated")
	return InitiateResult{GatewayPageURL: resp.GatewayPageURL, TransactionID: tranID, PaymentID: paymentID}, nil
}

// Confirm handles the gateway callback. After the gateway validates valID
// the payment is marked success and its booking confirmed in one
// transaction. It returns the confirmed booking id.
//
// If the policy refuses to confirm the booking, the payment is still marked
// success (the money has moved) and TransitionRejectedError is returned.
func (s PaymentService) Confirm(ctx context.Context, valID, tranID string) (int64, error) {
	valID, tranID = strings.TrimSpace(valID), strings.TrimSpace(tranID)
	if err := requireFields(
		fieldCheck{"val_id", present(valID)},
		fieldCheck{"tran_id", present(tranID)},
	); err != nil {
		return 0, err
	}

	v, err := s.Gateway.Validate(ctx, valID)
	if err != nil {
		metrics.IncGateway("validate", "error")
		logging.Event(s.Log.Error(), s.RequestID, "payment", "confirm").
			Str("tran_id", tranID).Err(err).Msg("gateway validation failed")
		if !domain.IsGateway(err) {
			err = domain.GatewayError{Kind: domain.GatewayUnreachable, Err: err}
		}
		return 0, err
	}
	if !v.Valid() || (v.TranID != "" && v.TranID != tranID) {
		metrics.IncGateway("validate", "invalid")
		logging.Event(s.Log.Warn(), s.RequestID, "payment", "confirm").
			Str("tran_id", tranID).Str("gateway_status", v.Status).Str("gateway_tran_id", v.TranID).Msg("payment rejected")
		return 0, domain.InvalidPaymentError{TransactionID: tranID, Status: v.Status}
	}
	metrics.IncGateway("validate", "valid")

	var (
		bookingID int64
		rejected  error
		next      domain.BookingStatus
	)
	err = intdb.WithTx(ctx, s.DB, func(tx *sqlx.Tx) error {
		payments := repositories.PaymentRepository{DB: tx}
		bookings := repositories.BookingRepository{DB: tx}

		id, err := payments.BookingIDByTransaction(ctx, tranID)
		if err != nil {
			return storeErr(err, "booking")
		}
		bookingID = id

		if _, err := payments.UpdateStatusByTransaction(ctx, tranID, domain.PaymentSuccess); err != nil {
			return domain.InternalError{Msg: "error updating payment status", Err: err}
		}

		raw, err := bookings.GetStatusForUpdate(ctx, bookingID)
		if err != nil {
			return storeErr(err, "booking")
		}
		next, err = transition(s.Policy, raw, domain.ActionPaymentConfirmed)
		if err != nil {
			if domain.IsTransitionRejected(err) {
				rejected = err
				return nil
			}
			return err
		}
		n, err := bookings.UpdateStatus(ctx, bookingID, raw, next)
		if err != nil {
			return domain.InternalError{Msg: "error updating booking status", Err: err}
		}
		if n == 0 {
			return domain.ConflictError{Resource: "booking", Msg: "status changed concurrently, retry"}
		}
		return nil
	})
	if err != nil {
		ev := s.Log.Error()
		if domain.IsNotFound(err) {
			ev = s.Log.Warn()
		}
		logging.Event(ev, s.RequestID, "payment", "confirm").Str("tran_id", tranID).Err(err).Msg("confirmation rolled back")
		return 0, err
	}
	if rejected != nil {
		logging.Event(s.Log.Warn(), s.RequestID, "payment", "confirm").
			Str("tran_id", tranID).Int64("booking_id", bookingID).Err(rejected).Msg("payment recorded, booking left unchanged")
		return bookingID, rejected
	}

	metrics.IncTransition(string(domain.ActionPaymentConfirmed), string(next))
	logging.Event(s.Log.Info(), s.RequestID, "payment", "confirm").
		Str("tran_id", tranID).Int64("booking_id", bookingID).Msg("payment confirmed")
	return bookingID, nil
}

func (s PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	out, err := repositories.PaymentRepository{DB: s.DB}.List(ctx)
	return out, storeErr(err, "payment")
}

func (s PaymentService) ListForEmail(ctx context.Context, email string) ([]models.Payment, error) {
	out, err := repositories.PaymentRepository{DB: s.DB}.ListByEmail(ctx, strings.TrimSpace(email))
	return out, storeErr(err, "payment")
}

// Delete removes one payment row; the linked booking is not touched.
func (s PaymentService) Delete(ctx context.Context, id int64) error {
	n, err := repositories.PaymentRepository{DB: s.DB}.Delete(ctx, id)
	return affected(n, err, "payment")
}
