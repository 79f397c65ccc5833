package repositories

import (
	"context"
	"fmt"
	"strings"

	intdb "tourtravel/internal/db"
	"tourtravel/internal/domain/models"
)

type ItineraryRepository struct {
	DB intdb.DBTX
}

// InsertMany writes all entries with one multi-row INSERT and returns the
// number of inserted rows.
func (r ItineraryRepository) InsertMany(ctx context.Context, entries []models.ItineraryEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	placeholders := make([]string, 0, len(entries))
	args := make([]any, 0, len(entries)*4)
	for _, e := range entries {
		placeholders = append(placeholders, "(?, ?, ?, ?)")
		args = append(args, e.PackageID, e.DayNumber, e.Activity, intdb.NullIfEmpty(e.Details))
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO itinerary (package_id, day_number, activity, details) VALUES `+strings.Join(placeholders, ", "),
		args...)
	if err != nil {
		return 0, fmt.Errorf("insert itinerary: %w", err)
	}
	return res.RowsAffected()
}

func (r ItineraryRepository) ListByPackage(ctx context.Context, packageID int64) ([]models.ItineraryEntry, error) {
	out := []models.ItineraryEntry{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT id, package_id, day_number, activity, COALESCE(details, '') AS details
		FROM itinerary WHERE package_id = ? ORDER BY day_number`, packageID)
	if err != nil {
		return nil, fmt.Errorf("list itinerary of package %d: %w", packageID, err)
	}
	return out, nil
}
