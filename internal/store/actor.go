package store

import (
	"hospital-portal-server/internal/models"
)

// Actor identifies the authenticated principal performing a store operation.
// Mutations check their role and ownership preconditions against it; route
// middleware gates by role as well, but the store check is authoritative.
type Actor struct {
	ID   string
	Role models.Role

	// DoctorID is the catalog doctor id mapped to a doctor account, empty
	// for other roles.
	DoctorID string
}
