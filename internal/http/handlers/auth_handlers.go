package handlers

import (
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/ball-buddies/storefront/internal/auth"
	rl "github.com/ball-buddies/storefront/internal/http/rate_limiter"
)

// LoginHandler godoc
// @Summary Verify admin credentials and establish a session
// @Description Accepts a JSON body or a login form post; success sets the signed session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 401 {object} LoginResult
// @Failure 429 {string} string "Too many attempts"
// @Failure 502 {object} LoginResult
// @Router /admin/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if !rl.GetVisitor(clientIP(r)).Allow() {
		http.Error(w, "too many login attempts", http.StatusTooManyRequests)
		return
	}

	var creds CredentialsRequest
	if wantsJSON(r) {
		if err := readJSON(w, r, &creds); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		creds.Username = r.PostFormValue("username")
		creds.Password = r.PostFormValue("password")
	}

	res := guard.Login(r.Context(), creds.Username, creds.Password)
	if !res.Success {
		if wantsJSON(r) {
			status := http.StatusUnauthorized
			if res.Unavailable {
				status = http.StatusBadGateway
			}
			writeJSON(w, status, LoginResult{Error: res.Error})
			return
		}
		http.Redirect(w, r, "/admin?error="+url.QueryEscape(res.Error), http.StatusSeeOther)
		return
	}

	token, err := auth.GenerateAdminToken(creds.Username)
	if err != nil {
		logger.Error("failed to generate session token", zap.Error(err))
		http.Error(w, "failed to establish session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   12 * 3600,
	})

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, LoginResult{Success: true})
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// LogoutHandler godoc
// @Summary End the admin session
// @Tags auth
// @Produce json
// @Success 200 {object} LoginResult
// @Router /admin/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	guard.Logout(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, LoginResult{Success: true})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
