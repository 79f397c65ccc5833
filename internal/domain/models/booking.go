package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a row of the bookings table.
type Booking struct {
	ID           int64           `db:"id" json:"id"`
	UserID       int64           `db:"user_id" json:"user_id"`
	PackageID    int64           `db:"package_id" json:"package_id"`
	TravelDate   string          `db:"travel_date" json:"travel_date"`
	NumTravelers int             `db:"num_travelers" json:"num_travelers"`
	Phone        string          `db:"phone" json:"phone"`
	Email        string          `db:"email" json:"email"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"total_price"`
	Status       string          `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// BookingDetail is a booking joined with the package title and image.
type BookingDetail struct {
	BookingID    int64           `db:"booking_id" json:"booking_id"`
	UserID       int64           `db:"user_id" json:"user_id"`
	TravelDate   string          `db:"travel_date" json:"travel_date"`
	NumTravelers int             `db:"num_travelers" json:"num_travelers"`
	Phone        string          `db:"phone" json:"phone"`
	Email        string          `db:"email" json:"email"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"total_price"`
	Status       string          `db:"status" json:"status"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	PackageTitle string          `db:"package_title" json:"package_title"`
	PackageImage string          `db:"package_image" json:"package_image"`
}

// NewBooking carries the seven fields a booking is created from.
type NewBooking struct {
	UserID       int64           `json:"userId"`
	PackageID    int64           `json:"packageId"`
	TravelDate   string          `json:"travelDate"`
	NumTravelers int             `json:"numTravelers"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
}
