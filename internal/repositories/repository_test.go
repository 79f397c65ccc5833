package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, "mysql"), mock
}

var bookingDetailCols = []string{
	"booking_id", "user_id", "travel_date", "num_travelers", "phone", "email",
	"total_price", "status", "created_at", "package_title", "package_image",
}

func TestBookingCreate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(7), int64(3), "2025-06-01", 2, "0170000", "a@b.test", "500", "Pending").
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := BookingRepository{DB: db}.Create(context.Background(), models.NewBooking{
		UserID: 7, PackageID: 3, TravelDate: "2025-06-01", NumTravelers: 2,
		Phone: "0170000", Email: "a@b.test", TotalPrice: decimal.NewFromInt(500),
	}, domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingListAllOrdersNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery("ORDER BY b.created_at DESC").
		WillReturnRows(sqlmock.NewRows(bookingDetailCols).
			AddRow(2, 7, "2025-07-01", 1, "", "", "100.50", "Pending", now, "Sundarbans", "s.jpg").
			AddRow(1, 8, "2025-06-01", 2, "", "", "500", "Confirmed", now.Add(-time.Hour), "Cox's Bazar", "c.jpg"))

	out, err := BookingRepository{DB: db}.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].BookingID)
	assert.True(t, decimal.RequireFromString("100.50").Equal(out[0].TotalPrice))
	assert.Equal(t, "Cox's Bazar", out[1].PackageTitle)
}

func TestBookingListByUserEmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("WHERE b.user_id = ").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(bookingDetailCols))

	out, err := BookingRepository{DB: db}.ListByUser(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestBookingGetDetailNoRows(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("WHERE b.id = ").WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(bookingDetailCols))

	_, err := BookingRepository{DB: db}.GetDetail(context.Background(), 404)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestBookingUpdateStatusChecksPreviousStatus(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE bookings SET status = ").
		WithArgs("Cancelled", int64(5), "Pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := BookingRepository{DB: db}.UpdateStatus(context.Background(), 5, "Pending", domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentBookingIDByTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT booking_id FROM payments WHERE transaction_id = ").
		WithArgs("tran_1").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(11))
	mock.ExpectQuery("SELECT booking_id FROM payments WHERE transaction_id = ").
		WithArgs("tran_missing").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

	repo := PaymentRepository{DB: db}
	id, err := repo.BookingIDByTransaction(context.Background(), "tran_1")
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	_, err = repo.BookingIDByTransaction(context.Background(), "tran_missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestPaymentCreate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(1), int64(2), "750", "BDT", "Rahim", "r@x.test", "017", sqlmock.AnyArg(), "Pending", "SSLCommerz", "tran_abc").
		WillReturnResult(sqlmock.NewResult(3, 1))

	id, err := PaymentRepository{DB: db}.Create(context.Background(), models.Payment{
		BookingID: 1, UserID: 2, Amount: decimal.NewFromInt(750), Currency: "BDT",
		CusName: "Rahim", CusEmail: "r@x.test", CusPhone: "017", PaymentDate: time.Now(),
		PaymentStatus: "Pending", PaymentMethod: "SSLCommerz", TransactionID: "tran_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestItineraryInsertManyBuildsOneStatement(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`INSERT INTO itinerary \(package_id, day_number, activity, details\) VALUES \(\?, \?, \?, \?\), \(\?, \?, \?, \?\)$`).
		WithArgs(int64(1), 1, "Arrival", "Hotel check-in", int64(1), 2, "Boat trip", nil).
		WillReturnResult(sqlmock.NewResult(10, 2))

	n, err := ItineraryRepository{DB: db}.InsertMany(context.Background(), []models.ItineraryEntry{
		{PackageID: 1, DayNumber: 1, Activity: "Arrival", Details: "Hotel check-in"},
		{PackageID: 1, DayNumber: 2, Activity: "Boat trip"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestWishlistFind(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT id FROM wishlist").WithArgs("uid-1", int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id FROM wishlist").WithArgs("uid-1", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))

	repo := WishlistRepository{DB: db}
	id, err := repo.Find(context.Background(), "uid-1", 4)
	require.NoError(t, err)
	assert.Zero(t, id)

	id, err = repo.Find(context.Background(), "uid-1", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(77), id)
}

func TestReviewListByPackageEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM reviews WHERE package_id = ").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "package_id", "rating", "message", "user_name", "user_uid", "user_photo_url"}))

	out, err := ReviewRepository{DB: db}.ListByPackage(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}
