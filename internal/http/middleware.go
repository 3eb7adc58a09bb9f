package http

import (
	"net/http"

	"github.com/ball-buddies/storefront/internal/auth"
)

// RequireAdmin rejects API requests without a valid admin session cookie.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.RequestAuthenticated(r) {
			http.Error(w, "missing or invalid session", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RedirectIfAnonymous sends browsers without a session back to the admin
// login page instead of a bare 401.
func RedirectIfAnonymous(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.RequestAuthenticated(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
