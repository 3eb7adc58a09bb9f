package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ball-buddies/storefront/internal/http/handlers"
)

// NewRouter wires the storefront pages, the admin form endpoints, and the
// JSON API proxying the catalog backend.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handlers.HomeHandler)
	r.Get("/shop", handlers.ShopHandler)
	r.Get("/admin", handlers.AdminHandler)
	r.Post("/admin/login", handlers.LoginHandler)
	r.Post("/admin/logout", handlers.LogoutHandler)

	r.Group(func(r chi.Router) {
		r.Use(RedirectIfAnonymous)
		r.Post("/admin/buddies", handlers.AdminCreateBuddyHandler)
		r.Post("/admin/buddies/{id}/stock", handlers.AdminToggleStockHandler)
		r.Post("/admin/buddies/{id}/delete", handlers.AdminDeleteBuddyHandler)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthHandler)
		r.Get("/buddies", handlers.GetBuddiesHandler)
		r.Get("/buddies/search", handlers.SearchBuddiesHandler)
		r.Group(func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Post("/buddies", handlers.CreateBuddyHandler)
			r.Patch("/buddies/{id}", handlers.UpdateBuddyHandler)
			r.Delete("/buddies/{id}", handlers.DeleteBuddyHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.NotFound(handlers.NotFoundHandler)
	return r
}
