package services_test

import (
	"testing"

	"github.com/costasuite/backend/internal/dto"
	"github.com/costasuite/backend/internal/models"
	"github.com/costasuite/backend/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyCreateAttachesActorAsOwner(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)

	created := seedProperty(t, props, owner, "Sea View Apartment", "rent", 15000, "Acapulco")

	assert.Equal(t, owner.ID, created.OwnerID)
	assert.Equal(t, models.StatusAvailable, created.Status)
	require.NotNil(t, created.Owner)
	assert.Equal(t, "owner@costasuite.com", created.Owner.Email)
	// list/create projections omit the owner role
	assert.Empty(t, created.Owner.Role)
	// amenities default to an empty list, not null
	assert.NotNil(t, created.Amenities)
	assert.Empty(t, created.Amenities)
}

func TestPropertyGetExposesOwnerRole(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAdmin)

	created := seedProperty(t, props, owner, "Casa Colonial", "sale", 4200000, "Acapulco")

	got, err := props.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Owner)
	assert.Equal(t, models.RoleAdmin, got.Owner.Role)

	_, err = props.Get(uuid.New())
	assert.ErrorIs(t, err, services.ErrPropertyNotFound)
}

func TestPropertyListDefaultsToAvailable(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)

	seedProperty(t, props, owner, "Still Available", "sale", 1000000, "Acapulco")
	sold := seedProperty(t, props, owner, "Already Sold", "sale", 2000000, "Acapulco")

	_, err := props.Update(sold.ID, actorFor(owner), &dto.UpdatePropertyRequest{Status: strp("sold")})
	require.NoError(t, err)

	list, err := props.List(&dto.PropertyQuery{})
	require.NoError(t, err)
	require.Len(t, list.Properties, 1)
	assert.Equal(t, "Still Available", list.Properties[0].Title)
	assert.Equal(t, int64(1), list.Pagination.Total)

	soldList, err := props.List(&dto.PropertyQuery{Status: "sold"})
	require.NoError(t, err)
	require.Len(t, soldList.Properties, 1)
	assert.Equal(t, "Already Sold", soldList.Properties[0].Title)
}

func TestPropertyListFilters(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)

	seedProperty(t, props, owner, "Residencia Las Brisas", "sale", 12500000, "Acapulco")
	seedProperty(t, props, owner, "Condominio Diamante", "sale", 6800000, "Acapulco")
	seedProperty(t, props, owner, "Departamento Centro", "rent", 15000, "Cancún")

	// inclusive price bounds combined with type
	list, err := props.List(&dto.PropertyQuery{
		Type:     "sale",
		MinPrice: f64p(5000000),
		MaxPrice: f64p(6800000),
	})
	require.NoError(t, err)
	require.Len(t, list.Properties, 1)
	assert.Equal(t, "Condominio Diamante", list.Properties[0].Title)
	assert.Equal(t, int64(1), list.Pagination.Total)

	byCity, err := props.List(&dto.PropertyQuery{City: "acapulco"})
	require.NoError(t, err)
	assert.Len(t, byCity.Properties, 2)

	bySearch, err := props.List(&dto.PropertyQuery{Search: "BRISAS"})
	require.NoError(t, err)
	require.Len(t, bySearch.Properties, 1)
	assert.Equal(t, "Residencia Las Brisas", bySearch.Properties[0].Title)
}

func TestPropertyListSortAndPagination(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)

	seedProperty(t, props, owner, "Mid Priced Home", "sale", 2000000, "Acapulco")
	seedProperty(t, props, owner, "Cheap Studio Flat", "sale", 1000000, "Acapulco")
	seedProperty(t, props, owner, "Luxury Penthouse", "sale", 3000000, "Acapulco")

	page1, err := props.List(&dto.PropertyQuery{Sort: "price", Limit: 2, Page: 1})
	require.NoError(t, err)
	require.Len(t, page1.Properties, 2)
	assert.Equal(t, "Cheap Studio Flat", page1.Properties[0].Title)
	assert.Equal(t, "Mid Priced Home", page1.Properties[1].Title)
	// total reflects all matches, not the page window
	assert.Equal(t, int64(3), page1.Pagination.Total)
	assert.Equal(t, int64(2), page1.Pagination.Pages)

	page2, err := props.List(&dto.PropertyQuery{Sort: "price", Limit: 2, Page: 2})
	require.NoError(t, err)
	require.Len(t, page2.Properties, 1)
	assert.Equal(t, "Luxury Penthouse", page2.Properties[0].Title)

	desc, err := props.List(&dto.PropertyQuery{Sort: "-price"})
	require.NoError(t, err)
	require.Len(t, desc.Properties, 3)
	assert.Equal(t, "Luxury Penthouse", desc.Properties[0].Title)
}

func TestPropertyUpdateAccess(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)
	rival := seedUser(t, db, "rival@costasuite.com", models.RoleAgent)
	admin := seedUser(t, db, "admin@costasuite.com", models.RoleAdmin)

	listing := seedProperty(t, props, owner, "Guarded Listing", "sale", 1000000, "Acapulco")

	_, err := props.Update(listing.ID, actorFor(rival), &dto.UpdatePropertyRequest{Price: f64p(1)})
	assert.ErrorIs(t, err, services.ErrNotPropertyOwner)

	updated, err := props.Update(listing.ID, actorFor(admin), &dto.UpdatePropertyRequest{Price: f64p(1100000)})
	require.NoError(t, err)
	assert.Equal(t, 1100000.0, updated.Price)

	// unknown id reports not-found even for non-owners
	_, err = props.Update(uuid.New(), actorFor(rival), &dto.UpdatePropertyRequest{Price: f64p(1)})
	assert.ErrorIs(t, err, services.ErrPropertyNotFound)
}

func TestPropertyUpdateReplacesNestedGroupsWholesale(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)

	req := validPropertyReq("Casa con Estacionamiento", "sale", 2500000, "Acapulco")
	parking := 2
	year := 1995
	req.Features.ParkingSpots = &parking
	req.Features.YearBuilt = &year
	created, err := props.Create(actorFor(owner), req)
	require.NoError(t, err)
	require.NotNil(t, created.Features.ParkingSpots)

	updated, err := props.Update(created.ID, actorFor(owner), &dto.UpdatePropertyRequest{
		Location: &dto.LocationInput{
			Address:     "Calle Hidalgo 5",
			City:        "Taxco",
			State:       "Guerrero",
			Country:     "México",
			PostalCode:  "40200",
			Coordinates: dto.CoordinatesInput{Lat: 18.55, Lng: -99.6},
		},
		Features: &dto.FeaturesInput{Bedrooms: 4, Bathrooms: 3, Area: 220},
	})
	require.NoError(t, err)

	assert.Equal(t, "Taxco", updated.Location.City)
	assert.Equal(t, "Calle Hidalgo 5", updated.Location.Address)
	assert.Equal(t, 4, updated.Features.Bedrooms)
	// replacement, not merge: omitted optional fields are cleared
	assert.Nil(t, updated.Features.ParkingSpots)
	assert.Nil(t, updated.Features.YearBuilt)
}

func TestPropertyDelete(t *testing.T) {
	db := setupDB(t)
	props := services.NewPropertyService(db)
	owner := seedUser(t, db, "owner@costasuite.com", models.RoleAgent)
	rival := seedUser(t, db, "rival@costasuite.com", models.RoleAgent)

	listing := seedProperty(t, props, owner, "Short Lived Flat", "rent", 9000, "Acapulco")

	_, err := props.Delete(listing.ID, actorFor(rival))
	assert.ErrorIs(t, err, services.ErrNotPropertyOwner)

	resp, err := props.Delete(listing.ID, actorFor(owner))
	require.NoError(t, err)
	assert.Equal(t, "Property deleted successfully", resp.Message)

	_, err = props.Get(listing.ID)
	assert.ErrorIs(t, err, services.ErrPropertyNotFound)

	_, err = props.Delete(listing.ID, actorFor(owner))
	assert.ErrorIs(t, err, services.ErrPropertyNotFound)
}
