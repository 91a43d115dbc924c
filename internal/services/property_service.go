package services

import (
	"errors"
	"fmt"

	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/models"
	"github.com/costasuite/backend/internal/policy"
	"github.com/costasuite/backend/internal/query"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrNotPropertyOwner = errors.New("not authorized to modify this property")
)

var propertySortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"price":     "price",
	"title":     "title",
	"area":      "features_area",
}

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

func (s *PropertyService) List(q *dto.PropertyQuery) (*dto.PropertyListResponse, error) {
	p := q.Params()

	status := q.Status
	if status == "" {
		status = string(models.StatusAvailable)
	}

	base := s.db.Model(&models.Property{}).
		Where("status = ?", status).
		Scopes(
			query.Search(p.Search, "title", "description"),
			query.Range("price", q.MinPrice, q.MaxPrice),
			query.Contains("location_city", q.City),
		)
	if q.Type != "" {
		base = base.Where("type = ?", q.Type)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	var properties []models.Property
	err := base.
		Preload("Owner").
		Order(query.Order(p.Sort, "-createdAt", propertySortFields)).
		Scopes(query.Paginate(p)).
		Find(&properties).Error
	if err != nil {
		return nil, err
	}

	items := make([]dto.PropertyResponse, len(properties))
	for i := range properties {
		items[i] = dto.NewPropertyResponse(&properties[i], false)
	}

	return &dto.PropertyListResponse{
		Properties: items,
		Pagination: query.PageMeta(p, total),
	}, nil
}

func (s *PropertyService) Get(id uuid.UUID) (*dto.PropertyResponse, error) {
	var property models.Property
	if err := s.db.Preload("Owner").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	resp := dto.NewPropertyResponse(&property, true)
	return &resp, nil
}

// Create attaches ownership from the authenticated actor; the request
// body cannot set ownerId.
func (s *PropertyService) Create(actor policy.Actor, req *dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	property := models.Property{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Type:        models.PropertyType(req.Type),
		Status:      models.StatusAvailable,
		Price:       req.Price,
		Location:    req.Location.Model(),
		Features:    req.Features.Model(),
		Images:      datatypes.NewJSONSlice(req.Images),
		Amenities:   datatypes.NewJSONSlice(amenities),
		OwnerID:     actor.ID,
	}

	if err := s.db.Create(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if err := s.db.Preload("Owner").First(&property, "id = ?", property.ID).Error; err != nil {
		return nil, err
	}

	resp := dto.NewPropertyResponse(&property, false)
	return &resp, nil
}

func (s *PropertyService) Update(id uuid.UUID, actor policy.Actor, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if !policy.CanModify(actor, property.OwnerID) {
		return nil, ErrNotPropertyOwner
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Type != nil {
		property.Type = models.PropertyType(*req.Type)
	}
	if req.Status != nil {
		property.Status = models.PropertyStatus(*req.Status)
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Location != nil {
		property.Location = req.Location.Model()
	}
	if req.Features != nil {
		property.Features = req.Features.Model()
	}
	if req.Images != nil {
		property.Images = datatypes.NewJSONSlice(*req.Images)
	}
	if req.Amenities != nil {
		property.Amenities = datatypes.NewJSONSlice(*req.Amenities)
	}

	if err := s.db.Save(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	if err := s.db.Preload("Owner").First(&property, "id = ?", property.ID).Error; err != nil {
		return nil, err
	}

	resp := dto.NewPropertyResponse(&property, false)
	return &resp, nil
}

func (s *PropertyService) Delete(id uuid.UUID, actor policy.Actor) (*dto.DeleteResponse, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if !policy.CanModify(actor, property.OwnerID) {
		return nil, ErrNotPropertyOwner
	}

	if err := s.db.Delete(&property).Error; err != nil {
		return nil, err
	}

	return &dto.DeleteResponse{Message: "Property deleted successfully"}, nil
}
