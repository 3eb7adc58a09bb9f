package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ball-buddies/storefront/internal/client"
	"github.com/ball-buddies/storefront/internal/models"
	"github.com/ball-buddies/storefront/internal/search"
)

// newBuddyEngine builds a search engine over the standard buddy fields.
func newBuddyEngine() *search.Engine[models.Buddy] {
	return search.New(models.BuddyFields(), models.SearchableFields()...)
}

// GetBuddiesHandler godoc
// @Summary List all buddies
// @Description Returns the full catalog snapshot from the backend
// @Tags buddies
// @Produce json
// @Success 200 {array} models.Buddy
// @Failure 502 {string} string "Backend unavailable"
// @Router /api/buddies [get]
func GetBuddiesHandler(w http.ResponseWriter, r *http.Request) {
	buddies, err := catalog.Buddies(r.Context())
	if err != nil {
		backendError(w, err, "could not fetch buddies")
		return
	}
	if buddies == nil {
		buddies = []models.Buddy{}
	}
	writeJSON(w, http.StatusOK, buddies)
}

// SearchBuddiesHandler godoc
// @Summary Search, filter, and sort buddies
// @Tags buddies
// @Produce json
// @Param q query string false "Free-text search over name, sport, description"
// @Param sort query string false "Sort key (name, sport, price, rarity, inStock)"
// @Param stock query string false "Stock filter: all, inStock, outOfStock"
// @Success 200 {object} BuddiesSearchResult
// @Failure 502 {string} string "Backend unavailable"
// @Router /api/buddies/search [get]
func SearchBuddiesHandler(w http.ResponseWriter, r *http.Request) {
	buddies, err := catalog.Buddies(r.Context())
	if err != nil {
		backendError(w, err, "could not fetch buddies")
		return
	}

	q := r.URL.Query()
	eng := newBuddyEngine()
	eng.SetSource(buddies)
	eng.SetSearchTerm(q.Get("q"))
	eng.SetSortKey(q.Get("sort"))
	eng.SetStockFilter(search.StockFilter(q.Get("stock")))

	writeJSON(w, http.StatusOK, BuddiesSearchResult{
		Data: eng.Results(),
		Meta: Meta{ResultCount: eng.ResultCount(), TotalCount: eng.TotalCount()},
	})
}

// CreateBuddyHandler godoc
// @Summary Create a new buddy
// @Tags buddies
// @Accept json
// @Produce json
// @Security AdminSession
// @Param buddy body BuddyRequest true "Buddy to add"
// @Success 201 {object} models.Buddy
// @Failure 400 {array} BuddyValidationError
// @Failure 502 {string} string "Backend unavailable"
// @Router /api/buddies [post]
func CreateBuddyHandler(w http.ResponseWriter, r *http.Request) {
	var req BuddyRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateBuddy(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := catalog.CreateBuddy(r.Context(), models.Buddy{
		Name:        req.Name,
		Sport:       req.Sport,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Rarity:      req.Rarity,
		InStock:     req.InStock,
	})
	if err != nil {
		backendError(w, err, "could not create buddy")
		return
	}

	refreshShopSnapshot()
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBuddyHandler godoc
// @Summary Partially update a buddy
// @Tags buddies
// @Accept json
// @Produce json
// @Security AdminSession
// @Param id path string true "Buddy ID"
// @Param patch body client.BuddyPatch true "Fields to update"
// @Success 200 {object} models.Buddy
// @Failure 400 {array} BuddyValidationError
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Backend unavailable"
// @Router /api/buddies/{id} [patch]
func UpdateBuddyHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "buddy ID is required", http.StatusBadRequest)
		return
	}

	var patch client.BuddyPatch
	if err := readJSON(w, r, &patch); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateBuddyPatch(patch)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := catalog.UpdateBuddy(r.Context(), id, patch)
	if err != nil {
		backendError(w, err, "could not update buddy")
		return
	}

	refreshShopSnapshot()
	writeJSON(w, http.StatusOK, updated)
}

// DeleteBuddyHandler godoc
// @Summary Delete a buddy
// @Tags buddies
// @Security AdminSession
// @Param id path string true "Buddy ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 502 {string} string "Backend unavailable"
// @Router /api/buddies/{id} [delete]
func DeleteBuddyHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "buddy ID is required", http.StatusBadRequest)
		return
	}

	if err := catalog.DeleteBuddy(r.Context(), id); err != nil {
		backendError(w, err, "could not delete buddy")
		return
	}

	refreshShopSnapshot()
	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler godoc
// @Summary Service health
// @Tags meta
// @Produce json
// @Success 200 {object} HealthResult
// @Router /api/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	backend := "ok"
	if _, err := catalog.Buddies(r.Context()); err != nil {
		backend = "unreachable"
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResult{Status: "ok", Backend: backend})
}

// refreshShopSnapshot refetches the shop page's cached catalog after a write
// so browsers see the change on the next render. Detached from the request
// context so the refetch survives the response.
func refreshShopSnapshot() {
	if shopFetcher != nil {
		shopFetcher.Refresh(context.Background())
	}
}
