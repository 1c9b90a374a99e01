// Package session holds the in-memory pairing of access token and user
// profile for the lifetime of a portal run.
//
// The Store is the single shared mutable resource of the client. It has a
// single-writer contract: only the auth service mutates it; every other
// component sees the read-only Reader view.
package session

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shelterdesk/portal/internal/models"
)

// Reader is the read-only view of the session handed to request transports
// and UI components.
type Reader interface {
	// AccessToken returns the current token, or "" when nobody is signed in.
	AccessToken() string

	// User returns the signed-in user's profile. ok is false when absent.
	User() (profile models.UserProfile, ok bool)

	// Authenticated reports whether a session is present.
	Authenticated() bool

	// ExpiresWithin reports whether the access token expires within d.
	// It returns false when there is no token or the token carries no
	// usable expiry claim.
	ExpiresWithin(d time.Duration) bool
}

// Store is the owning, writable session state.
type Store struct {
	mu        sync.RWMutex
	token     string
	user      *models.UserProfile
	expiresAt time.Time
}

func NewStore() *Store {
	return &Store{}
}

// Set replaces the token and the user profile together. There is never a
// partial session: a user is visible only alongside the token it came with.
func (s *Store) Set(token string, user models.UserProfile) {
	exp := tokenExpiry(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
	s.expiresAt = exp
}

// Clear empties both fields.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.expiresAt = time.Time{}
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) User() (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.UserProfile{}, false
	}
	return *s.user, true
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) ExpiresWithin(d time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.expiresAt.IsZero() {
		return false
	}
	return time.Until(s.expiresAt) <= d
}

// tokenExpiry extracts the exp claim from the access token without verifying
// the signature. Verification is the backend's job; the client only uses the
// claim to schedule refreshes ahead of expiry. Opaque (non-JWT) tokens yield
// a zero time.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
