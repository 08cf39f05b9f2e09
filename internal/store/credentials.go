package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"doctor-booking-api/internal/auth"
	"doctor-booking-api/internal/kv"
	"doctor-booking-api/internal/model"
)

// loadUsers reads the registered-user list, falling back to the legacy key.
// Corrupt or absent data resolves to an empty list, never an error.
func (s *Store) loadUsers(ctx context.Context) ([]model.RegisteredUser, error) {
	raw, err := s.kv.Get(ctx, KeyRegisteredUsers)
	if errors.Is(err, kv.ErrNotFound) {
		raw, err = s.kv.Get(ctx, KeyRegisteredUsersLegacy)
	}
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var users []model.RegisteredUser
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Printf("registered users: malformed stored data, starting empty: %v", err)
		return nil, nil
	}
	return users, nil
}

// saveUsers rewrites the whole list under the canonical key and drops the
// legacy key so future reads see one schema.
func (s *Store) saveUsers(ctx context.Context, users []model.RegisteredUser) error {
	b, err := json.Marshal(users)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyRegisteredUsers, string(b)); err != nil {
		return err
	}
	_ = s.kv.Delete(ctx, KeyRegisteredUsersLegacy)
	return nil
}

// FindByEmailAndPassword matches on normalized email and exact trimmed
// password. A successful lookup re-serializes the list, which also migrates
// any legacy-keyed data to the canonical key.
func (s *Store) FindByEmailAndPassword(ctx context.Context, email, password string) (*model.RegisteredUser, error) {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	wantEmail := auth.NormalizeEmail(email)
	wantPassword := strings.TrimSpace(password)

	for i := range users {
		if auth.NormalizeEmail(users[i].Email) == wantEmail && users[i].Password == wantPassword {
			if err := s.saveUsers(ctx, users); err != nil {
				return nil, err
			}
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// knownEmails collects normalized emails from the registered list, the
// legacy user list, and the session caches older builds may have written.
func (s *Store) knownEmails(ctx context.Context, users []model.RegisteredUser) map[string]bool {
	emails := make(map[string]bool, len(users))
	for i := range users {
		emails[auth.NormalizeEmail(users[i].Email)] = true
	}

	// the legacy list may coexist with the canonical one if something else
	// wrote it after the last migration
	if raw, err := s.kv.Get(ctx, KeyRegisteredUsersLegacy); err == nil {
		var legacy []model.RegisteredUser
		if err := json.Unmarshal([]byte(raw), &legacy); err == nil {
			for i := range legacy {
				emails[auth.NormalizeEmail(legacy[i].Email)] = true
			}
		}
	}

	for _, key := range []string{KeyCurrentUserLegacy, KeySessionUser} {
		raw, err := s.kv.Get(ctx, key)
		if err != nil {
			continue
		}
		var u struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal([]byte(raw), &u); err != nil || u.Email == "" {
			continue
		}
		emails[auth.NormalizeEmail(u.Email)] = true
	}
	return emails
}

// RegisterUser appends the candidate after uniqueness checks and rewrites the
// whole list.
func (s *Store) RegisterUser(ctx context.Context, u *model.RegisteredUser) error {
	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}

	if s.knownEmails(ctx, users)[auth.NormalizeEmail(u.Email)] {
		return ErrDuplicateEmail
	}

	wantUsername := strings.ToLower(u.Username)
	for i := range users {
		if strings.ToLower(users[i].Username) == wantUsername {
			return ErrDuplicateUsername
		}
	}

	users = append(users, *u)
	return s.saveUsers(ctx, users)
}
