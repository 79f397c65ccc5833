package services

import (
	"context"
	"errors"
	"testing"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
	"tourtravel/internal/gateway"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	initResp   gateway.InitiateResponse
	initErr    error
	validation gateway.ValidationResponse
	validErr   error

	initiated []gateway.InitiateRequest
	validated []string
}

func (f *fakeGateway) Initiate(_ context.Context, req gateway.InitiateRequest) (gateway.InitiateResponse, error) {
	f.initiated = append(f.initiated, req)
	return f.initResp, f.initErr
}

func (f *fakeGateway) Validate(_ context.Context, valID string) (gateway.ValidationResponse, error) {
	f.validated = append(f.validated, valID)
	return f.validation, f.validErr
}

func validInit() models.PaymentInit {
	return models.PaymentInit{
		BookingID: 5,
		UserID:    2,
		Amount:    decimal.NewFromInt(1200),
		CusName:   "Rahim",
		CusEmail:  "r@x.test",
		CusPhone:  "017",
	}
}

func TestPaymentInitiateStoresPendingPayment(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(5), int64(2), "1200", "BDT", "Rahim", "r@x.test", "017",
			sqlmock.AnyArg(), "Pending", "SSLCommerz", "tran_fixed").
		WillReturnResult(sqlmock.NewResult(31, 1))

	gw := &fakeGateway{initResp: gateway.InitiateResponse{Status: "SUCCESS", GatewayPageURL: "https://gw.test/pay"}}
	svc := PaymentService{
		DB:               db,
		Gateway:          gw,
		Currency:         "BDT",
		Log:              zerolog.Nop(),
		NewTransactionID: func() string { return "tran_fixed" },
	}

	out, err := svc.Initiate(context.Background(), validInit())
	require.NoError(t, err)
	assert.Equal(t, "https://gw.test/pay", out.GatewayPageURL)
	assert.Equal(t, "tran_fixed", out.TransactionID)
	assert.Equal(t, int64(31), out.PaymentID)
	require.Len(t, gw.initiated, 1)
	assert.Equal(t, "tran_fixed", gw.initiated[0].TransactionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentInitiateGatewayFailurePersistsNothing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	gw := &fakeGateway{initErr: domain.GatewayError{Kind: domain.GatewayInitiationFailed, Err: errors.New("no url")}}
	_, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Initiate(context.Background(), validInit())

	var gwErr domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, domain.GatewayInitiationFailed, gwErr.Kind)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentInitiateUnknownBooking(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))

	gw := &fakeGateway{}
	_, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Initiate(context.Background(), validInit())
	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, gw.initiated)
}

func TestPaymentInitiateValidation(t *testing.T) {
	in := validInit()
	in.Amount = decimal.Zero
	in.CusEmail = " "

	gw := &fakeGateway{}
	_, err := PaymentService{Gateway: gw, Log: zerolog.Nop()}.Initiate(context.Background(), in)
	var vErr domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount, cus_email", vErr.Field)
	assert.Empty(t, gw.initiated)
}

func TestPaymentTransactionIDsAreUnique(t *testing.T) {
	svc := PaymentService{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := svc.newTransactionID()
		assert.Regexp(t, `^tran_[0-9a-f]{32}$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func expectConfirmLookup(mock sqlmock.Sqlmock, tranID string, bookingID int64) {
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT booking_id FROM payments WHERE transaction_id").WithArgs(tranID).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(bookingID))
	mock.ExpectExec("UPDATE payments SET payment_status").WithArgs("success", tranID).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestPaymentConfirmRoundTrip(t *testing.T) {
	db, mock := newMockDB(t)
	expectConfirmLookup(mock, "tran_1", 11)
	mock.ExpectQuery(statusQuery+` FOR UPDATE`).WithArgs(int64(11)).WillReturnRows(statusRows("Pending"))
	mock.ExpectExec("UPDATE bookings SET status").WithArgs("Confirmed", int64(11), "Pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gw := &fakeGateway{validation: gateway.ValidationResponse{Status: "VALID", TranID: "tran_1"}}
	id, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Confirm(context.Background(), "val_1", "tran_1")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, []string{"val_1"}, gw.validated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfirmInvalidMutatesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	gw := &fakeGateway{validation: gateway.ValidationResponse{Status: "INVALID_TRANSACTION"}}

	_, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Confirm(context.Background(), "val_1", "tran_1")
	assert.True(t, domain.IsInvalidPayment(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfirmTranIDMismatch(t *testing.T) {
	db, mock := newMockDB(t)
	gw := &fakeGateway{validation: gateway.ValidationResponse{Status: "VALID", TranID: "tran_other"}}

	_, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Confirm(context.Background(), "val_1", "tran_1")
	assert.True(t, domain.IsInvalidPayment(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfirmUnknownTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT booking_id FROM payments WHERE transaction_id").WithArgs("tran_x").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))
	mock.ExpectRollback()

	gw := &fakeGateway{validation: gateway.ValidationResponse{Status: "VALID"}}
	_, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Confirm(context.Background(), "val_1", "tran_x")

	var nf domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "booking", nf.Resource)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfirmBookingWriteFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	expectConfirmLookup(mock, "tran_1", 11)
	mock.ExpectQuery(statusQuery+` FOR UPDATE`).WithArgs(int64(11)).WillReturnRows(statusRows("Pending"))
	mock.ExpectExec("UPDATE bookings SET status").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	gw := &fakeGateway{validation: gateway.ValidationResponse{Status: "VALID", TranID: "tran_1"}}
	_, err := PaymentService{DB: db, Gateway: gw, Log: zerolog.Nop()}.Confirm(context.Background(), "val_1", "tran_1")
	assert.True(t, domain.IsInternal(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfirmStrictRejectionKeepsPayment(t *testing.T) {
	db, mock := newMockDB(t)
	expectConfirmLookup(mock, "tran_1", 11)
	mock.ExpectQuery(statusQuery+` FOR UPDATE`).WithArgs(int64(11)).
		WillReturnRows(statusRows("Cancelled with Refund"))
	mock.ExpectCommit()

	gw := &fakeGateway{validation: gateway.ValidationResponse{Status: "VALID", TranID: "tran_1"}}
	id, err := PaymentService{DB: db, Gateway: gw, Policy: domain.PolicyStrict, Log: zerolog.Nop()}.
		Confirm(context.Background(), "val_1", "tran_1")
	assert.Equal(t, int64(11), id)
	assert.True(t, domain.IsTransitionRejected(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentConfirmGatewayDown(t *testing.T) {
	gw := &fakeGateway{validErr: errors.New("dial tcp: refused")}
	_, err := PaymentService{Gateway: gw, Log: zerolog.Nop()}.Confirm(context.Background(), "val_1", "tran_1")

	var gwErr domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, domain.GatewayUnreachable, gwErr.Kind)
}

func TestPaymentDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DELETE FROM payments WHERE id").WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := PaymentService{DB: db, Log: zerolog.Nop()}.Delete(context.Background(), 8)
	assert.True(t, domain.IsNotFound(err))
}
