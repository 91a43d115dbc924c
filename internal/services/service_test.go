package services_test

import (
	"testing"
	"time"

	"github.com/costasuite/backend/internal/credentials"
	"github.com/costasuite/backend/internal/database"
	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/models"
	"github.com/costasuite/backend/internal/policy"
	"github.com/costasuite/backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testCreds() *credentials.Service {
	return credentials.New("test-secret", time.Hour)
}

// seedUser inserts a user directly; password is irrelevant for tests
// that never log in.
func seedUser(t *testing.T, db *gorm.DB, email string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "irrelevant",
		Name:     "Test User",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func actorFor(u models.User) policy.Actor {
	return policy.Actor{ID: u.ID, Email: u.Email, Role: u.Role}
}

func strp(s string) *string { return &s }

func f64p(f float64) *float64 { return &f }

func validPropertyReq(title, typ string, price float64, city string) *dto.CreatePropertyRequest {
	return &dto.CreatePropertyRequest{
		Title:       title,
		Description: "A reasonably long description used across the service tests.",
		Type:        typ,
		Price:       price,
		Location: dto.LocationInput{
			Address:     "Av. Costera Miguel Alemán 121",
			City:        city,
			State:       "Guerrero",
			Country:     "México",
			PostalCode:  "39670",
			Coordinates: dto.CoordinatesInput{Lat: 16.85, Lng: -99.82},
		},
		Features: dto.FeaturesInput{Bedrooms: 2, Bathrooms: 1, Area: 85},
		Images:   []string{"https://example.com/photo-1.jpg"},
	}
}

func seedProperty(t *testing.T, svc *services.PropertyService, owner models.User, title, typ string, price float64, city string) dto.PropertyResponse {
	t.Helper()
	resp, err := svc.Create(actorFor(owner), validPropertyReq(title, typ, price, city))
	require.NoError(t, err)
	return *resp
}
