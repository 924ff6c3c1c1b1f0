package database

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"boardscout/server/internal/models"
)

// billboardRecord is the flat row shape used by the gorm-based bulk import
// path; array fields are carried as JSON text like the rest of the table.
type billboardRecord struct {
	ID                int64 `gorm:"primaryKey"`
	Location          string
	Address           string
	Latitude          float64
	Longitude         float64
	Price             int
	PriceUnit         string
	Height            float64
	Width             float64
	SizeUnit          string
	Views             string
	DailyImpressions  *int64
	Available         bool
	Type              string
	FacingDirection   string
	MinBookingDays    int
	Description       string
	Images            string
	Features          string
	NearbyAttractions string
	OwnerName         string
	OwnerPhone        string
	OwnerEmail        string
	OwnerResponse     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (billboardRecord) TableName() string {
	return "billboards"
}

func toRecord(b *models.Billboard) (*billboardRecord, error) {
	images, err := json.Marshal(emptyIfNil(b.Images))
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	features, err := json.Marshal(emptyIfNil(b.Features))
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}
	attractions, err := json.Marshal(emptyIfNil(b.NearbyAttractions))
	if err != nil {
		return nil, fmt.Errorf("failed to encode nearby attractions: %w", err)
	}

	rec := &billboardRecord{
		ID:                b.ID,
		Location:          b.Location,
		Address:           b.Address,
		Latitude:          b.Latitude,
		Longitude:         b.Longitude,
		Price:             b.Price,
		PriceUnit:         b.PriceUnit,
		Height:            b.Size.Height,
		Width:             b.Size.Width,
		SizeUnit:          b.Size.Unit,
		Views:             b.Views,
		Available:         b.Available,
		Type:              b.Type,
		FacingDirection:   b.FacingDirection,
		MinBookingDays:    b.MinBookingDays,
		Description:       b.Description,
		Images:            string(images),
		Features:          string(features),
		NearbyAttractions: string(attractions),
		OwnerName:         b.Owner.Name,
		OwnerPhone:        b.Owner.Phone,
		OwnerEmail:        b.Owner.Email,
		OwnerResponse:     b.Owner.Response,
	}
	if b.DailyImpressions != 0 {
		rec.DailyImpressions = &b.DailyImpressions
	}
	return rec, nil
}

// OpenGorm opens a gorm handle on the same sqlite file for the batch import
// path.
func OpenGorm(dbPath string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// UpsertBillboards inserts a batch of billboards inside the given
// transaction, replacing rows whose key is already present.
func UpsertBillboards(tx *gorm.DB, batch []*models.Billboard) error {
	records := make([]*billboardRecord, 0, len(batch))
	for _, b := range batch {
		rec, err := toRecord(b)
		if err != nil {
			return err
		}
		records = append(records, rec)
	}

	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&records).Error
}
