// Package session implements the admin session guard: a persisted boolean
// authentication flag checked against the backend admin list at login.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/ball-buddies/storefront/internal/models"
)

// User-facing login messages. A backend outage deliberately reads differently
// from a credential mismatch.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgVerifyUnavailable  = "Unable to verify credentials. Please try again."
)

// authenticatedValue is the only stored value treated as a live session.
const authenticatedValue = "true"

// AdminSource retrieves the admin credential list.
type AdminSource interface {
	Admins(ctx context.Context) ([]models.Admin, error)
}

// Result reports the outcome of a login attempt.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	// Unavailable marks a failure caused by the credential backend being
	// unreachable rather than by a mismatch. Not serialized; the web layer
	// maps it to a status code.
	Unavailable bool `json:"-"`
}

// Guard tracks whether the current session is authenticated. The flag is
// restored from the store at construction and persisted as the literal
// string "true" on successful login. The service has one admin session, so
// the guard and its busy flag are process-wide.
type Guard struct {
	store  Store
	admins AdminSource
	key    string
	logger *zap.Logger

	mu            sync.Mutex
	authenticated bool
	busy          bool
}

// NewGuard restores session state from store under key. Any stored value
// other than exactly "true" -- including an absent key or a read error --
// leaves the guard unauthenticated.
func NewGuard(store Store, admins AdminSource, key string, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Guard{store: store, admins: admins, key: key, logger: logger}
	if v, err := store.Get(context.Background(), key); err == nil && v == authenticatedValue {
		g.authenticated = true
	}
	return g
}

// Authenticated reports whether the session is currently authenticated.
func (g *Guard) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// Busy reports whether a login attempt is in progress.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Login checks the supplied credentials against the backend admin list.
// Matching is exact and case-sensitive on both fields. Calling Login while
// already authenticated re-runs the full check.
func (g *Guard) Login(ctx context.Context, username, password string) Result {
	g.setBusy(true)
	defer g.setBusy(false)

	admins, err := g.admins.Admins(ctx)
	if err != nil {
		g.logger.Warn("admin list unavailable", zap.Error(err))
		return Result{Error: msgVerifyUnavailable, Unavailable: true}
	}

	for _, admin := range admins {
		if admin.Username == username && admin.Password == password {
			g.mu.Lock()
			g.authenticated = true
			g.mu.Unlock()
			if err := g.store.Set(ctx, g.key, authenticatedValue); err != nil {
				g.logger.Warn("could not persist session flag", zap.Error(err))
			}
			return Result{Success: true}
		}
	}
	return Result{Error: msgInvalidCredentials}
}

// Logout clears the authenticated flag and removes the persisted key.
// Safe to call repeatedly.
func (g *Guard) Logout(ctx context.Context) {
	g.mu.Lock()
	g.authenticated = false
	g.mu.Unlock()
	if err := g.store.Delete(ctx, g.key); err != nil {
		g.logger.Warn("could not clear session flag", zap.Error(err))
	}
}

func (g *Guard) setBusy(b bool) {
	g.mu.Lock()
	g.busy = b
	g.mu.Unlock()
}
