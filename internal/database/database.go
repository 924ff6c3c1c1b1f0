package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"boardscout/server/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no billboard.
	ErrNotFound = errors.New("billboard not found")

	// ErrUserExists is returned when a signup reuses an email address.
	ErrUserExists = errors.New("user with this email already exists")
)

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// billboardColumns is the select list shared by all billboard queries.
const billboardColumns = `
        id,
        location,
        COALESCE(address, '') as address,
        COALESCE(latitude, 0) as latitude,
        COALESCE(longitude, 0) as longitude,
        price,
        COALESCE(price_unit, '') as price_unit,
        height,
        width,
        COALESCE(size_unit, '') as size_unit,
        COALESCE(views, '') as views,
        COALESCE(daily_impressions, 0) as daily_impressions,
        available,
        COALESCE(type, '') as type,
        COALESCE(facing_direction, '') as facing_direction,
        COALESCE(min_booking_days, 0) as min_booking_days,
        COALESCE(description, '') as description,
        COALESCE(images, '[]') as images,
        COALESCE(features, '[]') as features,
        COALESCE(nearby_attractions, '[]') as nearby_attractions,
        COALESCE(owner_name, '') as owner_name,
        COALESCE(owner_phone, '') as owner_phone,
        COALESCE(owner_email, '') as owner_email,
        COALESCE(owner_response, '') as owner_response,
        COALESCE(created_at, CURRENT_TIMESTAMP) as created_at,
        COALESCE(updated_at, CURRENT_TIMESTAMP) as updated_at
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBillboard(row rowScanner) (*models.Billboard, error) {
	var b models.Billboard
	var images, features, attractions string
	var createdAt, updatedAt string

	err := row.Scan(
		&b.ID,
		&b.Location,
		&b.Address,
		&b.Latitude,
		&b.Longitude,
		&b.Price,
		&b.PriceUnit,
		&b.Size.Height,
		&b.Size.Width,
		&b.Size.Unit,
		&b.Views,
		&b.DailyImpressions,
		&b.Available,
		&b.Type,
		&b.FacingDirection,
		&b.MinBookingDays,
		&b.Description,
		&images,
		&features,
		&attractions,
		&b.Owner.Name,
		&b.Owner.Phone,
		&b.Owner.Email,
		&b.Owner.Response,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Array columns are stored as JSON text
	if err := json.Unmarshal([]byte(images), &b.Images); err != nil {
		b.Images = nil
	}
	if err := json.Unmarshal([]byte(features), &b.Features); err != nil {
		b.Features = nil
	}
	if err := json.Unmarshal([]byte(attractions), &b.NearbyAttractions); err != nil {
		b.NearbyAttractions = nil
	}

	if t, err := parseTimestamp(createdAt); err == nil {
		b.CreatedAt = t
	}
	if t, err := parseTimestamp(updatedAt); err == nil {
		b.UpdatedAt = t
	}

	return &b, nil
}

// parseTimestamp accepts both RFC3339 values written by the driver and the
// plain "2006-01-02 15:04:05" form produced by CURRENT_TIMESTAMP.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}

// GetBillboardByID fetches a billboard by its store key.
func (d *Database) GetBillboardByID(ctx context.Context, id int64) (*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + ` FROM billboards WHERE id = ?`
	b, err := scanBillboard(d.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindBillboardByLocation returns the first billboard whose location contains
// the given text, case-insensitively.
func (d *Database) FindBillboardByLocation(ctx context.Context, text string) (*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + `
        FROM billboards
        WHERE LOWER(location) LIKE '%' || LOWER(?) || '%'
        ORDER BY id LIMIT 1`
	b, err := scanBillboard(d.db.QueryRowContext(ctx, query, text))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindBillboardAcrossFields returns the first billboard matching the text in
// its location, address, or owner name, case-insensitively.
func (d *Database) FindBillboardAcrossFields(ctx context.Context, text string) (*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + `
        FROM billboards
        WHERE LOWER(location) LIKE '%' || LOWER(?) || '%'
           OR LOWER(COALESCE(address, '')) LIKE '%' || LOWER(?) || '%'
           OR LOWER(COALESCE(owner_name, '')) LIKE '%' || LOWER(?) || '%'
        ORDER BY id LIMIT 1`
	b, err := scanBillboard(d.db.QueryRowContext(ctx, query, text, text, text))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindAnyBillboard returns the first-inserted billboard, if any exist.
func (d *Database) FindAnyBillboard(ctx context.Context) (*models.Billboard, error) {
	query := `SELECT ` + billboardColumns + ` FROM billboards ORDER BY id LIMIT 1`
	b, err := scanBillboard(d.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// SearchBillboards returns billboards whose location or description contains
// the search text; an empty search returns everything.
func (d *Database) SearchBillboards(ctx context.Context, search string) ([]models.Billboard, error) {
	query := `SELECT ` + billboardColumns + `
        FROM billboards
        WHERE ? = ''
           OR LOWER(location) LIKE '%' || LOWER(?) || '%'
           OR LOWER(COALESCE(description, '')) LIKE '%' || LOWER(?) || '%'
        ORDER BY id`

	rows, err := d.db.QueryContext(ctx, query, search, search, search)
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

// InsertBillboard persists a new listing and returns its assigned key.
func (d *Database) InsertBillboard(ctx context.Context, b *models.Billboard) (int64, error) {
	images, err := json.Marshal(emptyIfNil(b.Images))
	if err != nil {
		return 0, fmt.Errorf("failed to encode images: %w", err)
	}
	features, err := json.Marshal(emptyIfNil(b.Features))
	if err != nil {
		return 0, fmt.Errorf("failed to encode features: %w", err)
	}
	attractions, err := json.Marshal(emptyIfNil(b.NearbyAttractions))
	if err != nil {
		return 0, fmt.Errorf("failed to encode nearby attractions: %w", err)
	}

	result, err := d.db.ExecContext(ctx, `
        INSERT INTO billboards
        (location, address, latitude, longitude, price, price_unit, height, width, size_unit,
         views, daily_impressions, available, type, facing_direction, min_booking_days,
         description, images, features, nearby_attractions,
         owner_name, owner_phone, owner_email, owner_response)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Location,
		b.Address,
		b.Latitude,
		b.Longitude,
		b.Price,
		b.PriceUnit,
		b.Size.Height,
		b.Size.Width,
		b.Size.Unit,
		b.Views,
		nullIfZero(b.DailyImpressions),
		b.Available,
		b.Type,
		b.FacingDirection,
		b.MinBookingDays,
		b.Description,
		string(images),
		string(features),
		string(attractions),
		b.Owner.Name,
		b.Owner.Phone,
		b.Owner.Email,
		b.Owner.Response,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert billboard: %w", err)
	}

	return result.LastInsertId()
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullIfZero(n int64) interface{} {
	if n == 0 {
		return nil
	}
	return n
}

// CreateUser persists a new account and fills in its assigned id.
func (d *Database) CreateUser(ctx context.Context, user *models.User) error {
	result, err := d.db.ExecContext(ctx, `
        INSERT INTO users (name, email, password_hash, role)
        VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserExists
		}
		return err
	}
	user.ID, _ = result.LastInsertId()
	return nil
}

// GetUserByEmail looks up an account by email.
func (d *Database) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	var createdAt string
	err := d.db.QueryRowContext(ctx, `
        SELECT id, name, email, password_hash, COALESCE(role, 'user'),
               COALESCE(created_at, CURRENT_TIMESTAMP)
        FROM users WHERE LOWER(email) = LOWER(?)`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if t, err := parseTimestamp(createdAt); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}
