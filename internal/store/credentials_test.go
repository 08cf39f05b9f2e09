package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doctor-booking-api/internal/kv"
	"doctor-booking-api/internal/model"
	"doctor-booking-api/internal/store"
)

func newStore(t *testing.T) (*store.Store, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	return store.New(mem), mem
}

func user(id, username, email, password string) *model.RegisteredUser {
	return &model.RegisteredUser{
		UserID:    id,
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Password:  password,
		Email:     email,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, user("u1", "jane", "jane@example.com", "pass12345")))

	got, err := s.FindByEmailAndPassword(ctx, "jane@example.com", "pass12345")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	// normalized email and trimmed password still match
	got, err = s.FindByEmailAndPassword(ctx, "  Jane@Example.COM ", " pass12345 ")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, user("u1", "jane", "jane@example.com", "pass12345")))

	_, err := s.FindByEmailAndPassword(ctx, "jane@example.com", "wrongpass")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = s.FindByEmailAndPassword(ctx, "nobody@nowhere.com", "pass12345")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestDuplicateEmail(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, user("u1", "jane", "jane@example.com", "pass12345")))

	// differs only in case and whitespace
	err := s.RegisterUser(ctx, user("u2", "other", "  JANE@example.com ", "pass12345"))
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestDuplicateUsername(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.RegisterUser(ctx, user("u1", "jane", "jane@example.com", "pass12345")))

	err := s.RegisterUser(ctx, user("u2", "JANE", "jane2@example.com", "pass12345"))
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
}

func TestEmailInLegacySessionCacheBlocksRegistration(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	// an older build left a currentUser cache behind
	require.NoError(t, mem.Set(ctx, store.KeyCurrentUserLegacy, `{"email":"Old@Example.com"}`))

	err := s.RegisterUser(ctx, user("u1", "jane", "old@example.com", "pass12345"))
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestLegacyUserListKeyIsMigratedOnLogin(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	legacy := `[{"userId":"u1","firstName":"Jane","lastName":"Doe","username":"jane","password":"pass12345","email":"jane@example.com"}]`
	require.NoError(t, mem.Set(ctx, store.KeyRegisteredUsersLegacy, legacy))

	got, err := s.FindByEmailAndPassword(ctx, "jane@example.com", "pass12345")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)

	// the successful lookup rewrote the list under the canonical key
	_, err = mem.Get(ctx, store.KeyRegisteredUsers)
	assert.NoError(t, err)
	_, err = mem.Get(ctx, store.KeyRegisteredUsersLegacy)
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestLegacyListBlocksRegistrationAlongsideCanonical(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	// both lists exist; the legacy one holds an email the canonical one lacks
	require.NoError(t, s.RegisterUser(ctx, user("u1", "jane", "jane@example.com", "pass12345")))
	legacy := `[{"userId":"u0","username":"old","password":"pass12345","email":"old@example.com"}]`
	require.NoError(t, mem.Set(ctx, store.KeyRegisteredUsersLegacy, legacy))

	err := s.RegisterUser(ctx, user("u2", "newbie", "Old@Example.com", "pass12345"))
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)
}

func TestCorruptUserListResolvesEmpty(t *testing.T) {
	s, mem := newStore(t)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, store.KeyRegisteredUsers, "{{{not json"))

	// registration proceeds against an empty list
	require.NoError(t, s.RegisterUser(ctx, user("u1", "jane", "jane@example.com", "pass12345")))

	got, err := s.FindByEmailAndPassword(ctx, "jane@example.com", "pass12345")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
}

func TestUniqueEmailsAfterRegistrationSequence(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	emails := []string{"a@x.com", "A@x.com", " a@x.com", "b@x.com", "B@X.COM "}
	registered := 0
	for i, e := range emails {
		err := s.RegisterUser(ctx, user("u"+string(rune('0'+i)), "user"+string(rune('0'+i)), e, "pass12345"))
		if err == nil {
			registered++
		} else {
			assert.ErrorIs(t, err, store.ErrDuplicateEmail)
		}
	}
	// only one of each normalized email survives
	assert.Equal(t, 2, registered)
}
