package dto

import (
	"github.com/costasuite/backend/internal/models"
	"github.com/costasuite/backend/internal/query"
	"github.com/google/uuid"
)

type CoordinatesInput struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type LocationInput struct {
	Address     string           `json:"address" validate:"required"`
	City        string           `json:"city" validate:"required"`
	State       string           `json:"state" validate:"required"`
	Country     string           `json:"country" validate:"required"`
	PostalCode  string           `json:"postalCode" validate:"required"`
	Coordinates CoordinatesInput `json:"coordinates"`
}

func (l LocationInput) Model() models.Location {
	return models.Location{
		Address:    l.Address,
		City:       l.City,
		State:      l.State,
		Country:    l.Country,
		PostalCode: l.PostalCode,
		Coordinates: models.Coordinates{
			Lat: l.Coordinates.Lat,
			Lng: l.Coordinates.Lng,
		},
	}
}

type FeaturesInput struct {
	Bedrooms     int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int     `json:"bathrooms" validate:"gte=0"`
	Area         float64 `json:"area" validate:"required,gt=0"`
	ParkingSpots *int    `json:"parkingSpots" validate:"omitempty,gte=0"`
	YearBuilt    *int    `json:"yearBuilt" validate:"omitempty,gte=1800,notfuture"`
}

func (f FeaturesInput) Model() models.Features {
	return models.Features{
		Bedrooms:     f.Bedrooms,
		Bathrooms:    f.Bathrooms,
		Area:         f.Area,
		ParkingSpots: f.ParkingSpots,
		YearBuilt:    f.YearBuilt,
	}
}

// CreatePropertyRequest deliberately has no ownerId field: ownership
// always comes from the authenticated actor.
type CreatePropertyRequest struct {
	Title       string        `json:"title" validate:"required,min=5"`
	Description string        `json:"description" validate:"required,min=20"`
	Type        string        `json:"type" validate:"required,oneof=sale rent"`
	Price       float64       `json:"price" validate:"required,gt=0"`
	Location    LocationInput `json:"location" validate:"required"`
	Features    FeaturesInput `json:"features" validate:"required"`
	Images      []string      `json:"images" validate:"required,min=1,dive,url"`
	Amenities   []string      `json:"amenities"`
}

// UpdatePropertyRequest is a partial update. Location and Features,
// when present, replace the stored value wholesale.
type UpdatePropertyRequest struct {
	Title       *string        `json:"title" validate:"omitempty,min=5"`
	Description *string        `json:"description" validate:"omitempty,min=20"`
	Type        *string        `json:"type" validate:"omitempty,oneof=sale rent"`
	Status      *string        `json:"status" validate:"omitempty,oneof=available sold rented"`
	Price       *float64       `json:"price" validate:"omitempty,gt=0"`
	Location    *LocationInput `json:"location"`
	Features    *FeaturesInput `json:"features"`
	Images      *[]string      `json:"images" validate:"omitempty,min=1,dive,url"`
	Amenities   *[]string      `json:"amenities"`
}

type PropertyQuery struct {
	Page     int      `query:"page"`
	Limit    int      `query:"limit"`
	Sort     string   `query:"sort"`
	Search   string   `query:"search"`
	Type     string   `query:"type" validate:"omitempty,oneof=sale rent"`
	Status   string   `query:"status" validate:"omitempty,oneof=available sold rented"`
	MinPrice *float64 `query:"minPrice" validate:"omitempty,gte=0"`
	MaxPrice *float64 `query:"maxPrice" validate:"omitempty,gte=0"`
	City     string   `query:"city"`
}

func (q PropertyQuery) Params() query.Params {
	return query.Params{Page: q.Page, Limit: q.Limit, Sort: q.Sort, Search: q.Search}.Normalized()
}

// OwnerResponse is the owner projection attached to listings. Role is
// only populated on the detail endpoint.
type OwnerResponse struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role,omitempty"`
}

// PropertyResponse shadows the model's Owner with the safe projection.
type PropertyResponse struct {
	models.Property
	Owner *OwnerResponse `json:"owner,omitempty"`
}

func NewPropertyResponse(p *models.Property, withRole bool) PropertyResponse {
	resp := PropertyResponse{Property: *p}
	if p.Owner != nil {
		owner := &OwnerResponse{
			ID:    p.Owner.ID,
			Name:  p.Owner.Name,
			Email: p.Owner.Email,
		}
		if withRole {
			owner.Role = p.Owner.Role
		}
		resp.Owner = owner
	}
	return resp
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Pagination query.Meta         `json:"pagination"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
