package models

import "time"

// Size describes the physical dimensions of a billboard face.
type Size struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Unit   string  `json:"unit"`
}

// Owner holds the contact details of the party renting out the billboard.
type Owner struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Response string `json:"response"`
}

// Billboard is a single advertising-space listing. Optional fields use the
// zero value to mean "not recorded"; completion fills them for display.
type Billboard struct {
	ID                int64     `json:"id"`
	Location          string    `json:"location"`
	Address           string    `json:"address"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Price             int       `json:"price"`
	PriceUnit         string    `json:"priceUnit"`
	Size              Size      `json:"size"`
	Views             string    `json:"views"`
	DailyImpressions  int64     `json:"dailyImpressions"`
	Available         bool      `json:"available"`
	Type              string    `json:"type"`
	FacingDirection   string    `json:"facingDirection"`
	MinBookingDays    int       `json:"minBookingDays"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	Features          []string  `json:"features"`
	NearbyAttractions []string  `json:"nearbyAttractions"`
	Owner             Owner     `json:"owner"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BillboardInput carries the creatable fields of a listing submission. Arrays
// may arrive either as repeated form fields or as a JSON-encoded string, so
// they are parsed by the handler rather than bound directly.
type BillboardInput struct {
	Location          string  `form:"location" json:"location" binding:"required"`
	Address           string  `form:"address" json:"address"`
	Latitude          float64 `form:"latitude" json:"latitude" binding:"required"`
	Longitude         float64 `form:"longitude" json:"longitude" binding:"required"`
	Price             int     `form:"price" json:"price" binding:"required,gt=0"`
	PriceUnit         string  `form:"priceUnit" json:"priceUnit"`
	Height            float64 `form:"height" json:"height" binding:"required,gt=0"`
	Width             float64 `form:"width" json:"width" binding:"required,gt=0"`
	Unit              string  `form:"unit" json:"unit"`
	Views             string  `form:"views" json:"views"`
	DailyImpressions  int64   `form:"dailyImpressions" json:"dailyImpressions"`
	Available         *bool   `form:"available" json:"available"`
	Type              string  `form:"type" json:"type"`
	FacingDirection   string  `form:"facingDirection" json:"facingDirection"`
	MinBookingDays    int     `form:"minBookingDays" json:"minBookingDays"`
	Description       string  `form:"description" json:"description"`
	Features          string  `form:"features" json:"-"`
	NearbyAttractions string  `form:"nearbyAttractions" json:"-"`
	OwnerName         string  `form:"ownerName" json:"ownerName"`
	OwnerPhone        string  `form:"ownerPhone" json:"ownerPhone"`
	OwnerEmail        string  `form:"ownerEmail" json:"ownerEmail"`
	OwnerResponse     string  `form:"ownerResponse" json:"ownerResponse"`
}

// BillboardTypes are the accepted values for Billboard.Type.
var BillboardTypes = []string{"Static", "Digital", "LED", "Transit", "Other"}

// PriceUnits are the accepted values for Billboard.PriceUnit.
var PriceUnits = []string{"day", "week", "month"}
