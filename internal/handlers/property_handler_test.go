package handlers_test

import (
	"net/http"
	"testing"

	"github.com/costasuite/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyWritesRequireToken(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodPost, "/api/properties", "", propertyBody("Unauthorized Attempt"))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])

	status, _ = e.do(t, http.MethodPut, "/api/properties/"+uuid.NewString(), "bogus-token", fiber.Map{"price": 1})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestPropertyCreateIgnoresBodyOwnerID(t *testing.T) {
	e := newEnv(t)
	agent, token := e.seedUser(t, "agent@costasuite.com", models.RoleAgent)

	payload := propertyBody("Spoofed Owner Listing")
	payload["ownerId"] = uuid.NewString()

	status, body := e.do(t, http.MethodPost, "/api/properties", token, payload)
	require.Equal(t, http.StatusCreated, status)

	data := dataMap(t, body)
	assert.Equal(t, agent.ID.String(), data["ownerId"])
}

func TestPropertyLifecycle(t *testing.T) {
	e := newEnv(t)
	owner, ownerToken := e.seedUser(t, "owner@costasuite.com", models.RoleAgent)
	_, rivalToken := e.seedUser(t, "rival@costasuite.com", models.RoleAgent)

	status, body := e.do(t, http.MethodPost, "/api/properties", ownerToken, propertyBody("Lifecycle Listing"))
	require.Equal(t, http.StatusCreated, status)
	id := dataMap(t, body)["id"].(string)

	// reads are public
	status, body = e.do(t, http.MethodGet, "/api/properties/"+id, "", nil)
	require.Equal(t, http.StatusOK, status)
	data := dataMap(t, body)
	assert.Equal(t, "Lifecycle Listing", data["title"])
	ownerData, ok := data["owner"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, owner.Email, ownerData["email"])

	// another agent cannot modify
	status, body = e.do(t, http.MethodPut, "/api/properties/"+id, rivalToken, fiber.Map{"price": 1})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Not authorized to modify this property", body["error"])

	status, body = e.do(t, http.MethodPut, "/api/properties/"+id, ownerToken, fiber.Map{"status": "sold"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "sold", dataMap(t, body)["status"])

	status, _ = e.do(t, http.MethodDelete, "/api/properties/"+id, rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = e.do(t, http.MethodDelete, "/api/properties/"+id, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Property deleted successfully", dataMap(t, body)["message"])

	status, _ = e.do(t, http.MethodGet, "/api/properties/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPropertyListEndpoint(t *testing.T) {
	e := newEnv(t)
	_, token := e.seedUser(t, "agent@costasuite.com", models.RoleAgent)

	cheap := propertyBody("Affordable Downtown Flat")
	cheap["price"] = 800000
	expensive := propertyBody("Ocean View Residence")
	expensive["price"] = 9000000

	for _, p := range []fiber.Map{cheap, expensive} {
		status, _ := e.do(t, http.MethodPost, "/api/properties", token, p)
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := e.do(t, http.MethodGet, "/api/properties?maxPrice=1000000", "", nil)
	require.Equal(t, http.StatusOK, status)
	data := dataMap(t, body)
	list, ok := data["properties"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)

	pagination, ok := data["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(10), pagination["limit"])

	// invalid enum values are rejected before hitting the database
	status, body = e.do(t, http.MethodGet, "/api/properties?type=mansion", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation error", body["error"])
}

func TestPropertyBadRequests(t *testing.T) {
	e := newEnv(t)
	_, token := e.seedUser(t, "agent@costasuite.com", models.RoleAgent)

	status, body := e.do(t, http.MethodGet, "/api/properties/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid property ID", body["error"])

	payload := propertyBody("Bad Images Listing")
	payload["images"] = []string{}
	status, body = e.do(t, http.MethodPost, "/api/properties", token, payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation error", body["error"])
}
