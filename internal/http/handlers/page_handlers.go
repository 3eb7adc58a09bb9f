package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ball-buddies/storefront/internal/auth"
	"github.com/ball-buddies/storefront/internal/client"
	"github.com/ball-buddies/storefront/internal/models"
	"github.com/ball-buddies/storefront/internal/search"
)

type shopPage struct {
	Buddies     []models.Buddy
	ResultCount int
	TotalCount  int
	SearchTerm  string
	SortKey     string
	Stock       string
	Loading     bool
	Error       string
}

type adminLoginPage struct {
	Error string
	Busy  bool
}

type adminTablePage struct {
	Buddies []models.Buddy
	Count   int
	Error   string
}

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "home", nil)
}

// ShopHandler renders the catalog browse page. The buddy list comes from the
// shop fetcher's snapshot; search, sort, and stock query parameters shape the
// displayed subset.
func ShopHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shopFetcher.SetURL(ctx, catalog.BuddiesURL())
	// The backend owns the collection, so writes made there directly and
	// recovery from an earlier failed fetch must show up on the next visit.
	if !shopFetcher.State().Loading {
		shopFetcher.Refresh(ctx)
	}
	if err := shopFetcher.Wait(ctx); err != nil {
		logger.Warn("shop snapshot still loading", zap.Error(err))
	}
	st := shopFetcher.State()

	q := r.URL.Query()
	eng := newBuddyEngine()
	eng.SetSource(st.Data)
	eng.SetSearchTerm(q.Get("q"))
	eng.SetSortKey(q.Get("sort"))
	eng.SetStockFilter(search.StockFilter(q.Get("stock")))

	page := shopPage{
		Buddies:     eng.Results(),
		ResultCount: eng.ResultCount(),
		TotalCount:  eng.TotalCount(),
		SearchTerm:  q.Get("q"),
		SortKey:     q.Get("sort"),
		Stock:       q.Get("stock"),
		Loading:     st.Loading,
	}
	if st.Err != nil && st.Data == nil {
		page.Error = st.Err.Error()
	}
	render(w, http.StatusOK, "shop", page)
}

// AdminHandler renders either the login form or the inventory table,
// depending on whether the browser carries a valid session.
func AdminHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !auth.RequestAuthenticated(r) {
		render(w, http.StatusOK, "admin_login", adminLoginPage{
			Error: q.Get("error"),
			Busy:  guard.Busy(),
		})
		return
	}

	page := adminTablePage{Error: q.Get("error")}
	buddies, err := catalog.Buddies(r.Context())
	if err != nil {
		logger.Warn("could not load inventory", zap.Error(err))
		page.Error = "Could not load inventory. Please try again."
	} else {
		page.Buddies = buddies
		page.Count = len(buddies)
	}
	render(w, http.StatusOK, "admin_table", page)
}

// NotFoundHandler renders the 404 page for unknown paths.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusNotFound, "notfound", nil)
}

// AdminCreateBuddyHandler handles the admin table's add-buddy form.
func AdminCreateBuddyHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	price, _ := strconv.ParseFloat(r.PostFormValue("price"), 64)
	req := BuddyRequest{
		Name:        r.PostFormValue("name"),
		Sport:       r.PostFormValue("sport"),
		Description: r.PostFormValue("description"),
		Price:       price,
		Image:       r.PostFormValue("image"),
		Rarity:      r.PostFormValue("rarity"),
		InStock:     r.PostFormValue("inStock") == "on",
	}

	if errs := validateBuddy(req); len(errs) > 0 {
		redirectAdminError(w, r, errs[0].Description)
		return
	}

	_, err := catalog.CreateBuddy(r.Context(), models.Buddy{
		Name:        req.Name,
		Sport:       req.Sport,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Rarity:      req.Rarity,
		InStock:     req.InStock,
	})
	if err != nil {
		logger.Warn("could not create buddy", zap.Error(err))
		redirectAdminError(w, r, "Failed to create buddy. Please try again.")
		return
	}

	refreshShopSnapshot()
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminToggleStockHandler flips a buddy's stock status from the table row
// form; the hidden inStock field carries the current value.
func AdminToggleStockHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	next := r.PostFormValue("inStock") != "true"
	if _, err := catalog.UpdateBuddy(r.Context(), id, client.BuddyPatch{InStock: &next}); err != nil {
		logger.Warn("could not update stock status", zap.Error(err))
		redirectAdminError(w, r, "Failed to update stock status.")
		return
	}

	refreshShopSnapshot()
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AdminDeleteBuddyHandler removes a buddy from the table row form.
func AdminDeleteBuddyHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := catalog.DeleteBuddy(r.Context(), id); err != nil {
		logger.Warn("could not delete buddy", zap.Error(err))
		redirectAdminError(w, r, "Failed to delete buddy. Please try again.")
		return
	}

	refreshShopSnapshot()
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func redirectAdminError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/admin?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
