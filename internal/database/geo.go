package database

import (
	"context"

	"boardscout/server/internal/models"
)

// ListBillboardsWithCoordinates returns every billboard carrying a usable
// coordinate pair, for proximity filtering.
func (d *Database) ListBillboardsWithCoordinates(ctx context.Context) ([]models.Billboard, error) {
	query := `SELECT ` + billboardColumns + `
        FROM billboards
        WHERE latitude IS NOT NULL AND longitude IS NOT NULL
          AND NOT (latitude = 0 AND longitude = 0)
        ORDER BY id`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var billboards []models.Billboard
	for rows.Next() {
		b, err := scanBillboard(rows)
		if err != nil {
			return nil, err
		}
		billboards = append(billboards, *b)
	}
	return billboards, rows.Err()
}
