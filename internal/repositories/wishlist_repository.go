package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain/models"
)

type WishlistRepository struct {
	DB intdb.DBTX
}

func (r WishlistRepository) Create(ctx context.Context, userID string, packageID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `INSERT INTO wishlist (user_id, package_id) VALUES (?, ?)`, userID, packageID)
	if err != nil {
		return 0, fmt.Errorf("insert wishlist item: %w", err)
	}
	return res.LastInsertId()
}

// Find returns the id of the (user, package) row, or 0 when there is none.
func (r WishlistRepository) Find(ctx context.Context, userID string, packageID int64) (int64, error) {
	ids := []int64{}
	if err := r.DB.SelectContext(ctx, &ids,
		`SELECT id FROM wishlist WHERE user_id = ? AND package_id = ? LIMIT 1`, userID, packageID); err != nil {
		return 0, fmt.Errorf("find wishlist item: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}

func (r WishlistRepository) ListByUser(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	out := []models.WishlistItem{}
	if err := r.DB.SelectContext(ctx, &out,
		`SELECT id, user_id, package_id FROM wishlist WHERE user_id = ?`, userID); err != nil {
		return nil, fmt.Errorf("list wishlist of %s: %w", userID, err)
	}
	return out, nil
}

// Cart returns the user's wishlist joined with package data.
func (r WishlistRepository) Cart(ctx context.Context, userID string) ([]models.CartItem, error) {
	out := []models.CartItem{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT w.id AS wishlist_id, w.user_id, w.package_id,
		       p.title, p.description, p.price, p.image
		FROM wishlist w
		INNER JOIN packages p ON w.package_id = p.id
		WHERE w.user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("cart of %s: %w", userID, err)
	}
	return out, nil
}

func (r WishlistRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM wishlist WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete wishlist item %d: %w", id, err)
	}
	return res.RowsAffected()
}
