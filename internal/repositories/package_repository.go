package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain/models"
)

const packageSelect = `SELECT id, destination_id, title, description, price, duration, image FROM packages`

type PackageRepository struct {
	DB intdb.DBTX
}

func (r PackageRepository) Create(ctx context.Context, p models.Package) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO packages (destination_id, title, description, price, duration, image) VALUES (?, ?, ?, ?, ?, ?)`,
		p.DestinationID, p.Title, p.Description, p.Price, p.Duration, p.Image)
	if err != nil {
		return 0, fmt.Errorf("insert package: %w", err)
	}
	return res.LastInsertId()
}

func (r PackageRepository) List(ctx context.Context) ([]models.Package, error) {
	out := []models.Package{}
	if err := r.DB.SelectContext(ctx, &out, packageSelect); err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return out, nil
}

func (r PackageRepository) ListByDestination(ctx context.Context, destinationID int64) ([]models.Package, error) {
	out := []models.Package{}
	if err := r.DB.SelectContext(ctx, &out, packageSelect+` WHERE destination_id = ?`, destinationID); err != nil {
		return nil, fmt.Errorf("list packages of destination %d: %w", destinationID, err)
	}
	return out, nil
}

func (r PackageRepository) GetByID(ctx context.Context, id int64) (models.Package, error) {
	var p models.Package
	if err := r.DB.GetContext(ctx, &p, packageSelect+` WHERE id = ?`, id); err != nil {
		return models.Package{}, fmt.Errorf("get package %d: %w", id, err)
	}
	return p, nil
}
