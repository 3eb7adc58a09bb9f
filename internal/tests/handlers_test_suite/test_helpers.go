package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/ball-buddies/storefront/internal/auth"
	"github.com/ball-buddies/storefront/internal/client"
	"github.com/ball-buddies/storefront/internal/fetch"
	api "github.com/ball-buddies/storefront/internal/http"
	handler "github.com/ball-buddies/storefront/internal/http/handlers"
	rl "github.com/ball-buddies/storefront/internal/http/rate_limiter"
	"github.com/ball-buddies/storefront/internal/models"
	"github.com/ball-buddies/storefront/internal/session"
)

// fakeBackend stands in for the external catalog REST backend.
type fakeBackend struct {
	mu      sync.Mutex
	buddies []models.Buddy
	admins  []models.Admin
	nextID  int
	down    bool
	srv     *httptest.Server
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		buddies: []models.Buddy{
			{ID: "1", Name: "8-Ball", Sport: "pool", Description: "The coolest buddy on the felt", Price: 34.99, Rarity: "ultra", InStock: true},
			{ID: "2", Name: "Ball Baddie", Sport: "dodgeball", Description: "Always up to no good", Price: 25.99, Rarity: "rare", InStock: false},
			{ID: "3", Name: "Basketballer", Sport: "basketball", Description: "Dunks on everyone", Price: 29.99, Rarity: "common", InStock: true},
			{ID: "4", Name: "Soccer Punk", Sport: "soccer", Description: "A rebellious little punk", Price: 24.99, Rarity: "rare", InStock: true},
		},
		admins: []models.Admin{{ID: "1", Username: "admin", Password: "admin123"}},
		nextID: 5,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /buddies", b.listBuddies)
	mux.HandleFunc("POST /buddies", b.createBuddy)
	mux.HandleFunc("PATCH /buddies/{id}", b.patchBuddy)
	mux.HandleFunc("DELETE /buddies/{id}", b.deleteBuddy)
	mux.HandleFunc("GET /admins", b.listAdmins)

	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		down := b.down
		b.mu.Unlock()
		if down {
			http.Error(w, "backend down", http.StatusServiceUnavailable)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	return b
}

func (b *fakeBackend) setDown(down bool) {
	b.mu.Lock()
	b.down = down
	b.mu.Unlock()
}

// add appends a buddy directly, bypassing the service under test; the
// backend owns the collection and other clients write to it too.
func (b *fakeBackend) add(buddy models.Buddy) {
	b.mu.Lock()
	buddy.ID = strconv.Itoa(b.nextID)
	b.nextID++
	b.buddies = append(b.buddies, buddy)
	b.mu.Unlock()
}

func (b *fakeBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buddies)
}

func (b *fakeBackend) get(id string) (models.Buddy, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, buddy := range b.buddies {
		if buddy.ID == id {
			return buddy, true
		}
	}
	return models.Buddy{}, false
}

func (b *fakeBackend) listBuddies(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	json.NewEncoder(w).Encode(b.buddies)
}

func (b *fakeBackend) createBuddy(w http.ResponseWriter, r *http.Request) {
	var buddy models.Buddy
	if err := json.NewDecoder(r.Body).Decode(&buddy); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	buddy.ID = strconv.Itoa(b.nextID)
	b.nextID++
	b.buddies = append(b.buddies, buddy)
	b.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(buddy)
}

func (b *fakeBackend) patchBuddy(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	id := r.PathValue("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.buddies {
		if b.buddies[i].ID != id {
			continue
		}
		if v, ok := patch["name"].(string); ok {
			b.buddies[i].Name = v
		}
		if v, ok := patch["sport"].(string); ok {
			b.buddies[i].Sport = v
		}
		if v, ok := patch["description"].(string); ok {
			b.buddies[i].Description = v
		}
		if v, ok := patch["price"].(float64); ok {
			b.buddies[i].Price = v
		}
		if v, ok := patch["image"].(string); ok {
			b.buddies[i].Image = v
		}
		if v, ok := patch["rarity"].(string); ok {
			b.buddies[i].Rarity = v
		}
		if v, ok := patch["inStock"].(bool); ok {
			b.buddies[i].InStock = v
		}
		json.NewEncoder(w).Encode(b.buddies[i])
		return
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (b *fakeBackend) deleteBuddy(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.buddies {
		if b.buddies[i].ID == id {
			b.buddies = append(b.buddies[:i], b.buddies[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func (b *fakeBackend) listAdmins(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	json.NewEncoder(w).Encode(b.admins)
}

// setupServer wires a fresh router against a fake backend with a clean
// session guard and shop fetcher.
func setupServer(t *testing.T) (http.Handler, *fakeBackend) {
	t.Helper()

	backend := newFakeBackend()
	t.Cleanup(backend.srv.Close)
	rl.CleanupAllVisitors()

	catalog := client.NewCatalog(backend.srv.URL, nil)
	guard := session.NewGuard(session.NewMemoryStore(), catalog, "adminAuth", nil)
	fetcher := fetch.New[models.Buddy](nil, nil)

	handler.SetCatalog(catalog)
	handler.SetGuard(guard)
	handler.SetShopFetcher(fetcher)

	return api.NewRouter(), backend
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("generating session token: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}
