package services

import (
	"errors"
	"fmt"

	"github.com/costasuite/backend/internal/credentials"
	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is deliberately identical for unknown email
	// and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	db    *gorm.DB
	creds *credentials.Service
}

func NewAuthService(db *gorm.DB, creds *credentials.Service) *AuthService {
	return &AuthService{db: db, creds: creds}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleAgent
	}

	// Advisory check; the unique index is the real guarantee.
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := s.creds.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Role:     role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.respond(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.creds.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(&user)
}

func (s *AuthService) respond(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.creds.IssueToken(credentials.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	}, nil
}
