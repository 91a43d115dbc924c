package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PropertyType string

const (
	TypeSale PropertyType = "sale"
	TypeRent PropertyType = "rent"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeSale, TypeRent:
		return true
	}
	return false
}

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusSold      PropertyStatus = "sold"
	StatusRented    PropertyStatus = "rented"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusRented:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `gorm:"column:lat" json:"lat"`
	Lng float64 `gorm:"column:lng" json:"lng"`
}

type Location struct {
	Address     string      `gorm:"size:255;not null" json:"address"`
	City        string      `gorm:"size:100;not null;index" json:"city"`
	State       string      `gorm:"size:100;not null" json:"state"`
	Country     string      `gorm:"size:100;not null" json:"country"`
	PostalCode  string      `gorm:"size:20;not null" json:"postalCode"`
	Coordinates Coordinates `gorm:"embedded" json:"coordinates"`
}

type Features struct {
	Bedrooms     int     `gorm:"not null" json:"bedrooms"`
	Bathrooms    int     `gorm:"not null" json:"bathrooms"`
	Area         float64 `gorm:"not null" json:"area"`
	ParkingSpots *int    `json:"parkingSpots,omitempty"`
	YearBuilt    *int    `json:"yearBuilt,omitempty"`
}

// Property is a listing. Location and Features are embedded column
// groups and are replaced wholesale on update, never deep-merged.
type Property struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Description string                      `gorm:"type:text;not null" json:"description"`
	Type        PropertyType                `gorm:"size:10;not null;index" json:"type"`
	Status      PropertyStatus              `gorm:"size:10;not null;default:'available';index" json:"status"`
	Price       float64                     `gorm:"not null;index" json:"price"`
	Location    Location                    `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Features    Features                    `gorm:"embedded;embeddedPrefix:features_" json:"features"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"images"`
	Amenities   datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'" json:"amenities"`
	OwnerID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner       *User                       `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}
