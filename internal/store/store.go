package store

import (
	"errors"

	"doctor-booking-api/internal/kv"
)

// Storage keys. registered_users is the canonical schema; registeredUsers
// and currentUser are keys older builds of the demo wrote and are tolerated
// on read only.
const (
	KeyRegisteredUsers       = "registered_users"
	KeyRegisteredUsersLegacy = "registeredUsers"
	KeySessionUser           = "user"
	KeyCurrentUserLegacy     = "currentUser"
	KeySessionFlag           = "auth"
	KeyAppointmentsDefault   = "appointments"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
)

// Store owns the registered-user list.
type Store struct {
	kv kv.Store
}

func New(s kv.Store) *Store {
	return &Store{kv: s}
}
