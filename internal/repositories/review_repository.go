package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain/models"
)

const reviewSelect = `
	SELECT id, package_id, rating, COALESCE(message, '') AS message,
	       COALESCE(user_name, '') AS user_name,
	       COALESCE(user_uid, '') AS user_uid,
	       COALESCE(user_photo_url, '') AS user_photo_url
	FROM reviews`

type ReviewRepository struct {
	DB intdb.DBTX
}

func (r ReviewRepository) Create(ctx context.Context, rv models.Review) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (package_id, rating, message, user_name, user_uid, user_photo_url)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rv.PackageID, rv.Rating, rv.Message, rv.UserName, rv.UserUID, intdb.NullIfEmpty(rv.UserPhoto))
	if err != nil {
		return 0, fmt.Errorf("insert review: %w", err)
	}
	return res.LastInsertId()
}

func (r ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	out := []models.Review{}
	if err := r.DB.SelectContext(ctx, &out, reviewSelect); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

func (r ReviewRepository) ListByPackage(ctx context.Context, packageID int64) ([]models.Review, error) {
	out := []models.Review{}
	if err := r.DB.SelectContext(ctx, &out, reviewSelect+` WHERE package_id = ?`, packageID); err != nil {
		return nil, fmt.Errorf("list reviews of package %d: %w", packageID, err)
	}
	return out, nil
}

func (r ReviewRepository) ListByUser(ctx context.Context, uid string) ([]models.UserReview, error) {
	out := []models.UserReview{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT r.id, COALESCE(r.message, '') AS message, r.rating,
		       p.title AS package_name, COALESCE(p.image, '') AS image
		FROM reviews r
		JOIN packages p ON r.package_id = p.id
		WHERE r.user_uid = ?`, uid)
	if err != nil {
		return nil, fmt.Errorf("list reviews of user %s: %w", uid, err)
	}
	return out, nil
}

func (r ReviewRepository) Update(ctx context.Context, id int64, message string, rating int) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `UPDATE reviews SET message = ?, rating = ? WHERE id = ?`, message, rating, id)
	if err != nil {
		return 0, fmt.Errorf("update review %d: %w", id, err)
	}
	return res.RowsAffected()
}

func (r ReviewRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete review %d: %w", id, err)
	}
	return res.RowsAffected()
}
