package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Money goes out as a JSON number, the way the rows came out of MySQL before.
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Role  string `db:"role" json:"role"`
}

type Destination struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name" binding:"required"`
	Location    string `db:"location" json:"location" binding:"required"`
	Description string `db:"description" json:"description" binding:"required"`
	Image       string `db:"image" json:"image" binding:"required"`
}

type Package struct {
	ID            int64           `db:"id" json:"id"`
	DestinationID int64           `db:"destination_id" json:"destination_id" binding:"required"`
	Title         string          `db:"title" json:"title" binding:"required"`
	Description   string          `db:"description" json:"description" binding:"required"`
	Price         decimal.Decimal `db:"price" json:"price"`
	Duration      string          `db:"duration" json:"duration" binding:"required"`
	Image         string          `db:"image" json:"image" binding:"required"`
}

// ItineraryEntry is one day of a package's plan.
type ItineraryEntry struct {
	ID        int64  `db:"id" json:"id"`
	PackageID int64  `db:"package_id" json:"package_id" binding:"required"`
	DayNumber int    `db:"day_number" json:"day_number" binding:"required"`
	Activity  string `db:"activity" json:"activity" binding:"required"`
	Details   string `db:"details" json:"details"`
}

// Review references its author by external uid, not users.id.
type Review struct {
	ID        int64  `db:"id" json:"id"`
	PackageID int64  `db:"package_id" json:"package_id"`
	Rating    int    `db:"rating" json:"rating"`
	Message   string `db:"message" json:"message"`
	UserName  string `db:"user_name" json:"user_name"`
	UserUID   string `db:"user_uid" json:"user_uid"`
	UserPhoto string `db:"user_photo_url" json:"user_photo_url"`
}

// UserReview is a review joined with its package for the "my reviews" page.
type UserReview struct {
	ID          int64  `db:"id" json:"id"`
	Message     string `db:"message" json:"message"`
	Rating      int    `db:"rating" json:"rating"`
	PackageName string `db:"package_name" json:"package_name"`
	Image       string `db:"image" json:"image"`
}

type WishlistItem struct {
	ID        int64  `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"user_id"`
	PackageID int64  `db:"package_id" json:"package_id"`
}

// CartItem is a wishlist row joined with its package.
type CartItem struct {
	WishlistID  int64           `db:"wishlist_id" json:"wishlist_id"`
	UserID      string          `db:"user_id" json:"user_id"`
	PackageID   int64           `db:"package_id" json:"package_id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image"`
}
