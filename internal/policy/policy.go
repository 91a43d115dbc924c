// Package policy holds the access-control decisions. Handlers decide
// authentication; this package decides authorization.
package policy

import (
	"github.com/costasuite/backend/internal/models"
	"github.com/google/uuid"
)

// Actor is the authenticated caller as established by the JWT layer.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// CanModify reports whether the actor may update or delete a resource
// owned by ownerID: admins always, everyone else only their own.
func CanModify(actor Actor, ownerID uuid.UUID) bool {
	return actor.IsAdmin() || actor.ID == ownerID
}
