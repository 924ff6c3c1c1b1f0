package database

import (
	"fmt"

	"boardscout/server/internal/geocoding"
)

// TrafficSynth produces persisted values for views and daily impressions when
// a listing was stored without them.
type TrafficSynth func() (views string, impressions int64)

// UpdateMissingTraffic fills in views/daily_impressions for billboards stored
// without them, so repeated reads stop synthesizing different numbers.
func (d *Database) UpdateMissingTraffic(synth TrafficSynth) (int, error) {
	rows, err := d.db.Query(`
		SELECT id
		FROM billboards
		WHERE views IS NULL OR views = '' OR daily_impressions IS NULL
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to query billboards: %v", err)
	}

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan row: %v", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE billboards
		SET views = CASE WHEN views IS NULL OR views = '' THEN ? ELSE views END,
		    daily_impressions = COALESCE(daily_impressions, ?),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		views, impressions := synth()
		if _, err := stmt.Exec(views, impressions, id); err != nil {
			return 0, fmt.Errorf("failed to update billboard %d: %v", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %v", err)
	}

	return len(ids), nil
}

// UpdateMissingCoordinates geocodes billboards that were imported without
// coordinates. Each billboard is attempted once.
func (d *Database) UpdateMissingCoordinates(geocoder *geocoding.Geocoder) error {
	var totalCount int
	err := d.db.QueryRow(`
		SELECT COUNT(*)
		FROM billboards
		WHERE (latitude IS NULL OR longitude IS NULL OR (latitude = 0 AND longitude = 0))
		AND geocoding_attempted = 0
		AND address IS NOT NULL AND address != ''
	`).Scan(&totalCount)
	if err != nil {
		return fmt.Errorf("failed to count billboards: %v", err)
	}

	if totalCount == 0 {
		return nil
	}

	var processed, failed int
	batchSize := 10

	for processed+failed < totalCount {
		tx, err := d.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %v", err)
		}

		rows, err := tx.Query(`
			SELECT id, address, location
			FROM billboards
			WHERE (latitude IS NULL OR longitude IS NULL OR (latitude = 0 AND longitude = 0))
			AND geocoding_attempted = 0
			AND address IS NOT NULL AND address != ''
			LIMIT ?
		`, batchSize)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to query billboards: %v", err)
		}

		type pending struct {
			id                int64
			address, location string
		}
		var batch []pending
		for rows.Next() {
			var p pending
			if err := rows.Scan(&p.id, &p.address, &p.location); err != nil {
				rows.Close()
				tx.Rollback()
				return fmt.Errorf("failed to scan row: %v", err)
			}
			batch = append(batch, p)
		}
		rows.Close()

		stmt, err := tx.Prepare(`
			UPDATE billboards
			SET latitude = ?, longitude = ?, geocoding_attempted = 1
			WHERE id = ?
		`)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to prepare statement: %v", err)
		}

		failedStmt, err := tx.Prepare(`
			UPDATE billboards
			SET geocoding_attempted = 1
			WHERE id = ?
		`)
		if err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("failed to prepare failed statement: %v", err)
		}

		var batchProcessed int
		for _, p := range batch {
			lat, lon, err := geocoder.GeocodeAddress(p.address, p.location)
			if err != nil {
				// Mark as attempted even if geocoding failed
				if _, err := failedStmt.Exec(p.id); err != nil {
					stmt.Close()
					failedStmt.Close()
					tx.Rollback()
					return fmt.Errorf("failed to mark geocoding attempt: %v", err)
				}
				failed++
				batchProcessed++
				continue
			}

			if _, err := stmt.Exec(lat, lon, p.id); err != nil {
				stmt.Close()
				failedStmt.Close()
				tx.Rollback()
				return fmt.Errorf("failed to update coordinates: %v", err)
			}

			processed++
			batchProcessed++
		}

		stmt.Close()
		failedStmt.Close()

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}

		if batchProcessed == 0 {
			return fmt.Errorf("no billboards processed in batch, possible data inconsistency. Total processed: %d/%d",
				processed+failed, totalCount)
		}
	}

	return nil
}
