package services

import (
	"errors"
	"fmt"

	"github.com/costasuite/backend/internal/credentials"
	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/models"
	"github.com/costasuite/backend/internal/query"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrUserOwnsProperties blocks deletion while listings still
	// reference the user, so no dangling ownerId is ever left behind.
	ErrUserOwnsProperties = errors.New("user still owns properties")
)

var userSortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"email":     "email",
	"name":      "name",
}

type UserService struct {
	db    *gorm.DB
	creds *credentials.Service
}

func NewUserService(db *gorm.DB, creds *credentials.Service) *UserService {
	return &UserService{db: db, creds: creds}
}

func (s *UserService) List(q *dto.UserQuery) (*dto.UserListResponse, error) {
	p := q.Params()

	base := s.db.Model(&models.User{}).
		Scopes(query.Search(p.Search, "email", "name"))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		models.User
		PropertyCount int64
	}
	err := base.
		Select("users.*, (SELECT COUNT(*) FROM properties WHERE properties.owner_id = users.id) AS property_count").
		Order(query.Order(p.Sort, "-createdAt", userSortFields)).
		Scopes(query.Paginate(p)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]dto.UserSummary, len(rows))
	for i, row := range rows {
		users[i] = dto.UserSummary{
			UserResponse:  dto.NewUserResponse(&row.User),
			PropertyCount: row.PropertyCount,
		}
	}

	return &dto.UserListResponse{
		Users:      users,
		Pagination: query.PageMeta(p, total),
	}, nil
}

func (s *UserService) Get(id uuid.UUID) (*dto.UserDetail, error) {
	var user models.User
	err := s.db.Preload("Properties", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "title", "type", "status", "price", "owner_id")
	}).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	properties := make([]dto.PropertySummary, len(user.Properties))
	for i, p := range user.Properties {
		properties[i] = dto.PropertySummary{
			ID:     p.ID,
			Title:  p.Title,
			Type:   p.Type,
			Status: p.Status,
			Price:  p.Price,
		}
	}

	return &dto.UserDetail{
		UserResponse: dto.NewUserResponse(&user),
		Properties:   properties,
	}, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Role:     models.Role(req.Role),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = models.Role(*req.Role)
	}
	if req.Password != nil {
		hash, err := s.creds.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.db.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	resp := dto.NewUserResponse(&user)
	return &resp, nil
}

func (s *UserService) Delete(id uuid.UUID) (*dto.DeleteResponse, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var owned int64
	if err := s.db.Model(&models.Property{}).Where("owner_id = ?", id).Count(&owned).Error; err != nil {
		return nil, err
	}
	if owned > 0 {
		return nil, ErrUserOwnsProperties
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return nil, err
	}

	return &dto.DeleteResponse{Message: "User deleted successfully"}, nil
}
