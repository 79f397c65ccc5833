package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain"
	"tourtravel/internal/domain/models"
	"tourtravel/internal/logging"
	"tourtravel/internal/repositories"
	"tourtravel/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// CatalogService covers the plain resources: users, destinations, packages,
// itinerary, reviews and wishlist.
type CatalogService struct {
	DB        *sqlx.DB
	Log       zerolog.Logger
	RequestID string
}

// ===== Users =====

// SignUp registers name/email with the user role. An email that already
// exists is not an error: its id comes back with created=false.
func (s CatalogService) SignUp(ctx context.Context, name, email string) (id int64, created bool, err error) {
	name, email = utils.NormalizeSpace(name), strings.TrimSpace(email)
	if err := requireFields(fieldCheck{"name", present(name)}, fieldCheck{"email", present(email)}); err != nil {
		return 0, false, err
	}
	repo := repositories.UserRepository{DB: s.DB}

	u, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return u.ID, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, storeErr(err, "user")
	}

	id, err = repo.Create(ctx, name, email, domain.RoleUser)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			// lost a race with a concurrent sign-up
			u, ferr := repo.FindByEmail(ctx, email)
			if ferr == nil {
				return u.ID, false, nil
			}
		}
		logging.Event(s.Log.Error(), s.RequestID, "users", "signup").Err(err).Msg("insert failed")
		return 0, false, domain.InternalError{Msg: "database error", Err: err}
	}
	return id, true, nil
}

func (s CatalogService) Users(ctx context.Context) ([]models.User, error) {
	out, err := repositories.UserRepository{DB: s.DB}.List(ctx)
	return out, storeErr(err, "user")
}

// IsAdmin is false for unknown emails.
func (s CatalogService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := repositories.UserRepository{DB: s.DB}.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storeErr(err, "user")
	}
	role, _ := domain.ParseRole(u.Role)
	return role == domain.RoleAdmin, nil
}

func (s CatalogService) SetRole(ctx context.Context, id int64, role string) error {
	if !present(role) {
		return domain.ValidationError{Field: "role", Msg: "role is required"}
	}
	r, ok := domain.ParseRole(role)
	if !ok {
		return domain.ValidationError{Field: "role", Msg: "must be user or admin"}
	}
	n, err := repositories.UserRepository{DB: s.DB}.UpdateRole(ctx, id, r)
	if err := affected(n, err, "user"); err != nil {
		return err
	}
	logging.Event(s.Log.Info(), s.RequestID, "users", "set_role").Int64("user_id", id).Str("role", string(r)).Msg("role updated")
	return nil
}

// ===== Destinations =====

func (s CatalogService) CreateDestination(ctx context.Context, d models.Destination) (int64, error) {
	d.Name, d.Location = strings.TrimSpace(d.Name), strings.TrimSpace(d.Location)
	if err := requireFields(
		fieldCheck{"name", present(d.Name)},
		fieldCheck{"location", present(d.Location)},
		fieldCheck{"description", present(d.Description)},
		fieldCheck{"image", present(d.Image)},
	); err != nil {
		return 0, err
	}
	id, err := repositories.DestinationRepository{DB: s.DB}.Create(ctx, d)
	return id, storeErr(err, "destination")
}

func (s CatalogService) Destinations(ctx context.Context) ([]models.Destination, error) {
	out, err := repositories.DestinationRepository{DB: s.DB}.List(ctx)
	return out, storeErr(err, "destination")
}

func (s CatalogService) Destination(ctx context.Context, id int64) (models.Destination, error) {
	d, err := repositories.DestinationRepository{DB: s.DB}.GetByID(ctx, id)
	return d, storeErr(err, "destination")
}

// ===== Packages =====

func (s CatalogService) CreatePackage(ctx context.Context, p models.Package) (int64, error) {
	p.Title = strings.TrimSpace(p.Title)
	if err := requireFields(
		fieldCheck{"destination_id", p.DestinationID > 0},
		fieldCheck{"title", present(p.Title)},
		fieldCheck{"description", present(p.Description)},
		fieldCheck{"price", p.Price.IsPositive()},
		fieldCheck{"duration", present(p.Duration)},
		fieldCheck{"image", present(p.Image)},
	); err != nil {
		return 0, err
	}
	id, err := repositories.PackageRepository{DB: s.DB}.Create(ctx, p)
	return id, storeErr(err, "package")
}

// Packages lists every package, or only those of destinationID when it is non-zero.
func (s CatalogService) Packages(ctx context.Context, destinationID int64) ([]models.Package, error) {
	repo := repositories.PackageRepository{DB: s.DB}
	var (
		out []models.Package
		err error
	)
	if destinationID > 0 {
		out, err = repo.ListByDestination(ctx, destinationID)
	} else {
		out, err = repo.List(ctx)
	}
	return out, storeErr(err, "package")
}

func (s CatalogService) Package(ctx context.Context, id int64) (models.Package, error) {
	p, err := repositories.PackageRepository{DB: s.DB}.GetByID(ctx, id)
	return p, storeErr(err, "package")
}

// ===== Itinerary =====

// AddItinerary inserts all entries in one statement. Entries may belong to
// different packages.
func (s CatalogService) AddItinerary(ctx context.Context, entries []models.ItineraryEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, domain.ValidationError{Msg: "invalid data format"}
	}
	for i := range entries {
		entries[i].Activity = strings.TrimSpace(entries[i].Activity)
		e := entries[i]
		if err := requireFields(
			fieldCheck{"package_id", e.PackageID > 0},
			fieldCheck{"day_number", e.DayNumber > 0},
			fieldCheck{"activity", present(e.Activity)},
		); err != nil {
			return 0, err
		}
	}
	n, err := repositories.ItineraryRepository{DB: s.DB}.InsertMany(ctx, entries)
	if err != nil {
		logging.Event(s.Log.Error(), s.RequestID, "itinerary", "create").Int("entries", len(entries)).Err(err).Msg("bulk insert failed")
		return 0, domain.InternalError{Msg: "database error", Err: err}
	}
	return n, nil
}

func (s CatalogService) Itinerary(ctx context.Context, packageID int64) ([]models.ItineraryEntry, error) {
	out, err := repositories.ItineraryRepository{DB: s.DB}.ListByPackage(ctx, packageID)
	return out, storeErr(err, "itinerary")
}

// ===== Reviews =====

func validRating(r int) bool { return r >= 1 && r <= 5 }

func (s CatalogService) AddReview(ctx context.Context, rv models.Review) (int64, error) {
	rv.Message = strings.TrimSpace(rv.Message)
	rv.UserUID = strings.TrimSpace(rv.UserUID)
	if err := requireFields(
		fieldCheck{"package_id", rv.PackageID > 0},
		fieldCheck{"rating", rv.Rating != 0},
		fieldCheck{"message", present(rv.Message)},
		fieldCheck{"uid", present(rv.UserUID)},
	); err != nil {
		return 0, err
	}
	if !validRating(rv.Rating) {
		return 0, domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	id, err := repositories.ReviewRepository{DB: s.DB}.Create(ctx, rv)
	if err != nil {
		logging.Event(s.Log.Error(), s.RequestID, "reviews", "create").Int64("package_id", rv.PackageID).Err(err).Msg("insert failed")
		return 0, domain.InternalError{Msg: "failed to submit review", Err: err}
	}
	return id, nil
}

func (s CatalogService) Reviews(ctx context.Context) ([]models.Review, error) {
	out, err := repositories.ReviewRepository{DB: s.DB}.List(ctx)
	return out, storeErr(err, "review")
}

// PackageReviews is empty, never NotFound, for a package without reviews.
func (s CatalogService) PackageReviews(ctx context.Context, packageID int64) ([]models.Review, error) {
	out, err := repositories.ReviewRepository{DB: s.DB}.ListByPackage(ctx, packageID)
	return out, storeErr(err, "review")
}

func (s CatalogService) UserReviews(ctx context.Context, uid string) ([]models.UserReview, error) {
	out, err := repositories.ReviewRepository{DB: s.DB}.ListByUser(ctx, strings.TrimSpace(uid))
	return out, storeErr(err, "review")
}

func (s CatalogService) UpdateReview(ctx context.Context, id int64, message string, rating int) error {
	message = strings.TrimSpace(message)
	if err := requireFields(fieldCheck{"message", present(message)}, fieldCheck{"rating", rating != 0}); err != nil {
		return err
	}
	if !validRating(rating) {
		return domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	n, err := repositories.ReviewRepository{DB: s.DB}.Update(ctx, id, message, rating)
	return affected(n, err, "review")
}

func (s CatalogService) DeleteReview(ctx context.Context, id int64) error {
	n, err := repositories.ReviewRepository{DB: s.DB}.Delete(ctx, id)
	return affected(n, err, "review")
}

// ===== Wishlist =====

// AddToWishlist keeps at most one row per (user, package).
func (s CatalogService) AddToWishlist(ctx context.Context, uid string, packageID int64) (int64, error) {
	uid = strings.TrimSpace(uid)
	if err := requireFields(fieldCheck{"uid", present(uid)}, fieldCheck{"package_id", packageID > 0}); err != nil {
		return 0, err
	}
	repo := repositories.WishlistRepository{DB: s.DB}

	existing, err := repo.Find(ctx, uid, packageID)
	if err != nil {
		return 0, domain.InternalError{Msg: "database error", Err: err}
	}
	if existing != 0 {
		return existing, domain.ConflictError{Resource: "wishlist", Msg: "package already in wishlist"}
	}

	id, err := repo.Create(ctx, uid, packageID)
	if err != nil {
		if intdb.IsDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "wishlist", Msg: "package already in wishlist", Err: err}
		}
		return 0, domain.InternalError{Msg: "database error", Err: err}
	}
	return id, nil
}

func (s CatalogService) Wishlist(ctx context.Context, uid string) ([]models.WishlistItem, error) {
	out, err := repositories.WishlistRepository{DB: s.DB}.ListByUser(ctx, strings.TrimSpace(uid))
	return out, storeErr(err, "wishlist")
}

func (s CatalogService) Cart(ctx context.Context, uid string) ([]models.CartItem, error) {
	out, err := repositories.WishlistRepository{DB: s.DB}.Cart(ctx, strings.TrimSpace(uid))
	return out, storeErr(err, "wishlist")
}

func (s CatalogService) RemoveFromWishlist(ctx context.Context, id int64) error {
	n, err := repositories.WishlistRepository{DB: s.DB}.Delete(ctx, id)
	return affected(n, err, "wishlist item")
}
