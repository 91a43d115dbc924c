package dto

import (
	"time"

	"github.com/costasuite/backend/internal/models"
	"github.com/costasuite/backend/internal/query"
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,min=2"`
	Role     string `json:"role" validate:"required,oneof=admin agent"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Name     *string `json:"name" validate:"omitempty,min=2"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin agent"`
}

type UserQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Sort   string `query:"sort"`
	Search string `query:"search"`
}

func (q UserQuery) Params() query.Params {
	return query.Params{Page: q.Page, Limit: q.Limit, Sort: q.Sort, Search: q.Search}.Normalized()
}

// UserResponse is the safe projection: never the password hash.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserSummary is a list row: safe projection plus owned-listing count.
type UserSummary struct {
	UserResponse
	PropertyCount int64 `json:"propertyCount"`
}

// PropertySummary is the owned-listing projection on a user detail.
type PropertySummary struct {
	ID     uuid.UUID             `json:"id"`
	Title  string                `json:"title"`
	Type   models.PropertyType   `json:"type"`
	Status models.PropertyStatus `json:"status"`
	Price  float64               `json:"price"`
}

type UserDetail struct {
	UserResponse
	Properties []PropertySummary `json:"properties"`
}

type UserListResponse struct {
	Users      []UserSummary `json:"users"`
	Pagination query.Meta    `json:"pagination"`
}
