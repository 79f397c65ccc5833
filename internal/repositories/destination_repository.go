package repositories

import (
	"context"
	"fmt"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain/models"
)

type DestinationRepository struct {
	DB intdb.DBTX
}

func (r DestinationRepository) Create(ctx context.Context, d models.Destination) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO destinations (name, location, description, image) VALUES (?, ?, ?, ?)`,
		d.Name, d.Location, d.Description, d.Image)
	if err != nil {
		return 0, fmt.Errorf("insert destination: %w", err)
	}
	return res.LastInsertId()
}

func (r DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	out := []models.Destination{}
	if err := r.DB.SelectContext(ctx, &out,
		`SELECT id, name, location, description, image FROM destinations`); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return out, nil
}

func (r DestinationRepository) GetByID(ctx context.Context, id int64) (models.Destination, error) {
	var d models.Destination
	if err := r.DB.GetContext(ctx, &d,
		`SELECT id, name, location, description, image FROM destinations WHERE id = ?`, id); err != nil {
		return models.Destination{}, fmt.Errorf("get destination %d: %w", id, err)
	}
	return d, nil
}
