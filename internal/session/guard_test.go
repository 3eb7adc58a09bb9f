package session

import (
	"context"
	"errors"
	"testing"

	"github.com/ball-buddies/storefront/internal/models"
)

const testKey = "adminAuth"

type fakeAdmins struct {
	admins []models.Admin
	err    error
}

func (f *fakeAdmins) Admins(ctx context.Context) ([]models.Admin, error) {
	return f.admins, f.err
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("store unavailable")
}
func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("store unavailable")
}
func (failingStore) Delete(ctx context.Context, key string) error {
	return errors.New("store unavailable")
}

func oneAdmin() *fakeAdmins {
	return &fakeAdmins{admins: []models.Admin{{ID: "1", Username: "admin", Password: "admin123"}}}
}

func TestRestoreFromStore(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   bool
	}{
		{"exact true", ptr("true"), true},
		{"absent key", nil, false},
		{"empty string", ptr(""), false},
		{"false", ptr("false"), false},
		{"corrupted", ptr("TRUE\x00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			if tt.stored != nil {
				store.Set(context.Background(), testKey, *tt.stored)
			}
			g := NewGuard(store, oneAdmin(), testKey, nil)
			if g.Authenticated() != tt.want {
				t.Errorf("expected authenticated=%v", tt.want)
			}
		})
	}
}

func TestRestoreSurvivesStoreFailure(t *testing.T) {
	g := NewGuard(failingStore{}, oneAdmin(), testKey, nil)
	if g.Authenticated() {
		t.Error("expected unauthenticated when the store cannot be read")
	}
}

func TestLoginSuccess(t *testing.T) {
	store := NewMemoryStore()
	g := NewGuard(store, oneAdmin(), testKey, nil)

	res := g.Login(context.Background(), "admin", "admin123")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if !g.Authenticated() {
		t.Error("expected authenticated after successful login")
	}
	if v, err := store.Get(context.Background(), testKey); err != nil || v != "true" {
		t.Errorf("expected stored value %q, got %q (err %v)", "true", v, err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := NewMemoryStore()
	g := NewGuard(store, oneAdmin(), testKey, nil)

	res := g.Login(context.Background(), "admin", "wrong")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "Invalid username or password" {
		t.Errorf("unexpected message: %q", res.Error)
	}
	if res.Unavailable {
		t.Error("a credential mismatch must not read as an outage")
	}
	if g.Authenticated() {
		t.Error("failed login must not authenticate")
	}
	if _, err := store.Get(context.Background(), testKey); !errors.Is(err, ErrNotFound) {
		t.Error("failed login must not persist the session flag")
	}
}

func TestLoginMatchIsExactAndCaseSensitive(t *testing.T) {
	g := NewGuard(NewMemoryStore(), oneAdmin(), testKey, nil)

	tests := []struct {
		username, password string
	}{
		{"Admin", "admin123"},
		{"admin", "Admin123"},
		{"admin ", "admin123"},
		{"", ""},
	}
	for _, tt := range tests {
		if res := g.Login(context.Background(), tt.username, tt.password); res.Success {
			t.Errorf("login(%q, %q) unexpectedly succeeded", tt.username, tt.password)
		}
	}
}

func TestLoginEmptyAdminList(t *testing.T) {
	g := NewGuard(NewMemoryStore(), &fakeAdmins{admins: []models.Admin{}}, testKey, nil)

	res := g.Login(context.Background(), "admin", "admin123")
	if res.Success || res.Error != "Invalid username or password" {
		t.Errorf("expected credential mismatch, got %+v", res)
	}
}

func TestLoginBackendUnavailable(t *testing.T) {
	g := NewGuard(NewMemoryStore(), &fakeAdmins{err: errors.New("connection refused")}, testKey, nil)

	res := g.Login(context.Background(), "admin", "admin123")
	if res.Success {
		t.Fatal("expected failure")
	}
	if res.Error != "Unable to verify credentials. Please try again." {
		t.Errorf("unexpected message: %q", res.Error)
	}
	if !res.Unavailable {
		t.Error("expected the result marked unavailable")
	}
	if g.Authenticated() {
		t.Error("backend outage must not authenticate")
	}
}

func TestFailedLoginLeavesExistingSession(t *testing.T) {
	g := NewGuard(NewMemoryStore(), oneAdmin(), testKey, nil)
	if res := g.Login(context.Background(), "admin", "admin123"); !res.Success {
		t.Fatalf("setup login failed: %+v", res)
	}

	if res := g.Login(context.Background(), "admin", "wrong"); res.Success {
		t.Fatal("expected failure")
	}
	if !g.Authenticated() {
		t.Error("failed re-login must leave the existing session authenticated")
	}
}

func TestReLoginWhileAuthenticated(t *testing.T) {
	g := NewGuard(NewMemoryStore(), oneAdmin(), testKey, nil)
	for i := 0; i < 2; i++ {
		if res := g.Login(context.Background(), "admin", "admin123"); !res.Success {
			t.Fatalf("login %d failed: %+v", i+1, res)
		}
	}
	if !g.Authenticated() {
		t.Error("expected authenticated after re-login")
	}
}

func TestBusyResetAfterLogin(t *testing.T) {
	g := NewGuard(NewMemoryStore(), &fakeAdmins{err: errors.New("down")}, testKey, nil)
	g.Login(context.Background(), "admin", "admin123")
	if g.Busy() {
		t.Error("busy flag must reset after login resolves")
	}
}

func TestLoginPersistFailureStillAuthenticates(t *testing.T) {
	g := NewGuard(failingStore{}, oneAdmin(), testKey, nil)

	res := g.Login(context.Background(), "admin", "admin123")
	if !res.Success {
		t.Fatalf("expected success despite store failure, got %+v", res)
	}
	if !g.Authenticated() {
		t.Error("expected authenticated despite store failure")
	}
}

func TestLogoutIdempotent(t *testing.T) {
	store := NewMemoryStore()
	g := NewGuard(store, oneAdmin(), testKey, nil)
	if res := g.Login(context.Background(), "admin", "admin123"); !res.Success {
		t.Fatalf("setup login failed: %+v", res)
	}

	g.Logout(context.Background())
	g.Logout(context.Background())

	if g.Authenticated() {
		t.Error("expected unauthenticated after logout")
	}
	if _, err := store.Get(context.Background(), testKey); !errors.Is(err, ErrNotFound) {
		t.Error("expected session key removed after logout")
	}
}

func ptr(s string) *string { return &s }
