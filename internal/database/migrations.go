package database

import (
	"fmt"
	"strings"
)

func (d *Database) RunMigrations() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS billboards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			location TEXT NOT NULL,
			address TEXT,
			latitude REAL,
			longitude REAL,
			price INTEGER NOT NULL CHECK (price > 0),
			price_unit TEXT DEFAULT 'week',
			height REAL NOT NULL CHECK (height > 0),
			width REAL NOT NULL CHECK (width > 0),
			size_unit TEXT DEFAULT 'feet',
			views TEXT,
			daily_impressions INTEGER,
			available BOOLEAN NOT NULL DEFAULT 1,
			type TEXT DEFAULT 'Static',
			facing_direction TEXT,
			min_booking_days INTEGER DEFAULT 7,
			description TEXT,
			images TEXT DEFAULT '[]',
			features TEXT DEFAULT '[]',
			nearby_attractions TEXT DEFAULT '[]',
			owner_name TEXT,
			owner_phone TEXT,
			owner_email TEXT,
			owner_response TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create billboards table: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %v", err)
	}

	// Add geocoding_attempted column for the coordinate backfill
	_, err = d.db.Exec(`
		ALTER TABLE billboards
		ADD COLUMN geocoding_attempted BOOLEAN DEFAULT 0;
	`)
	if err != nil && !strings.Contains(err.Error(), "duplicate column name") {
		return err
	}

	// Mark billboards that already have coordinates as attempted
	_, err = d.db.Exec(`
		UPDATE billboards
		SET geocoding_attempted = 1
		WHERE latitude IS NOT NULL
		AND longitude IS NOT NULL
		AND NOT (latitude = 0 AND longitude = 0);
	`)
	if err != nil {
		return fmt.Errorf("failed to mark existing coordinates as attempted: %v", err)
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_billboards_location
		ON billboards(location);
	`)
	if err != nil {
		return err
	}

	// Spatial index for nearby lookups
	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_billboards_coordinates
		ON billboards(latitude, longitude);
	`)
	if err != nil {
		return err
	}

	return nil
}
