package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"doctor-booking-api/internal/auth"
	"doctor-booking-api/internal/kv"
	"doctor-booking-api/internal/model"
)

// Session derives authentication state from storage. Storage is read fresh
// at every transition; nothing is cached between calls beyond the
// appointment store's partition.
type Session struct {
	kv    kv.Store
	creds *Store
	appts *Appointments

	secret string
	// autoLogin picks one of the two post-registration behaviors the demo
	// shipped: enter the session directly, or send the user to the login
	// form.
	autoLogin bool
}

func NewSession(s kv.Store, creds *Store, appts *Appointments, secret string, autoLogin bool) *Session {
	return &Session{kv: s, creds: creds, appts: appts, secret: secret, autoLogin: autoLogin}
}

type RegisterForm struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Email     string
}

// Init resolves the persisted identity at startup and points the appointment
// store at the matching partition.
func (s *Session) Init(ctx context.Context) {
	if u, ok := s.Current(ctx); ok {
		s.appts.ReloadForUser(ctx, u.ID)
		return
	}
	s.appts.ReloadForUser(ctx, "")
}

// Current returns the persisted session projection, if any. An unparseable
// record is dropped and treated as anonymous.
func (s *Session) Current(ctx context.Context) (*model.AuthUser, bool) {
	raw, err := s.kv.Get(ctx, KeySessionUser)
	if err != nil {
		return nil, false
	}
	var u model.AuthUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("session: malformed stored user, clearing: %v", err)
		_ = s.kv.Delete(ctx, KeySessionUser)
		return nil, false
	}
	return &u, true
}

// ProfileFor returns the persisted projection when it belongs to the given
// user id. A projection written by a later login of a different user must
// not leak to holders of an older, still-valid token.
func (s *Session) ProfileFor(ctx context.Context, uid string) (*model.AuthUser, bool) {
	u, ok := s.Current(ctx)
	if !ok || u.ID != uid {
		return nil, false
	}
	return u, true
}

// IsAuthenticated is the fast-path check against the 24h session flag,
// independent of the richer user record.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, KeySessionFlag)
	if err != nil {
		return false
	}
	_, err = auth.ParseSessionToken(raw, s.secret)
	return err == nil
}

// Login validates credentials, persists the projection and the session flag,
// and reloads the appointment partition for the new identity.
func (s *Session) Login(ctx context.Context, email, password string) (*model.AuthUser, string, error) {
	u, err := s.creds.FindByEmailAndPassword(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	return s.enter(ctx, u)
}

// Register creates the credential record. Whether the new user enters the
// session directly depends on the autoLogin configuration.
func (s *Session) Register(ctx context.Context, form RegisterForm) (*model.AuthUser, string, error) {
	u := &model.RegisteredUser{
		UserID:    uuid.New().String(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Password:  form.Password,
		Email:     auth.NormalizeEmail(form.Email),
	}
	if err := s.creds.RegisterUser(ctx, u); err != nil {
		return nil, "", err
	}
	if !s.autoLogin {
		return projection(u), "", nil
	}
	return s.enter(ctx, u)
}

// Logout clears the projection and flag and falls back to the anonymous
// partition.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeySessionUser); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, KeySessionFlag); err != nil {
		return err
	}
	s.appts.ReloadForUser(ctx, "")
	return nil
}

// ExpireStale drops the persisted session once the 24h flag has lapsed.
// Run periodically; a live flag is left untouched.
func (s *Session) ExpireStale(ctx context.Context) {
	raw, err := s.kv.Get(ctx, KeySessionFlag)
	if err != nil {
		return
	}
	if _, err := auth.ParseSessionToken(raw, s.secret); err == nil {
		return
	}
	log.Println("session: flag expired, clearing persisted session")
	_ = s.kv.Delete(ctx, KeySessionFlag)
	_ = s.kv.Delete(ctx, KeySessionUser)
}

func (s *Session) enter(ctx context.Context, u *model.RegisteredUser) (*model.AuthUser, string, error) {
	proj := projection(u)
	b, err := json.Marshal(proj)
	if err != nil {
		return nil, "", err
	}
	if err := s.kv.Set(ctx, KeySessionUser, string(b)); err != nil {
		return nil, "", err
	}

	tok, err := auth.MakeSessionToken(u.UserID, proj.Email, s.secret)
	if err != nil {
		return nil, "", err
	}
	if err := s.kv.Set(ctx, KeySessionFlag, tok); err != nil {
		return nil, "", err
	}

	s.appts.ReloadForUser(ctx, u.UserID)
	return proj, tok, nil
}

func projection(u *model.RegisteredUser) *model.AuthUser {
	return &model.AuthUser{
		ID:    u.UserID,
		Name:  strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email: u.Email,
	}
}
