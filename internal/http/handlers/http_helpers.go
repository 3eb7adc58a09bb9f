package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ball-buddies/storefront/internal/fetch"
)

// readJSON decodes a single JSON value from the request body, capped at 1 MB.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}
	return nil
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	out, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		logger.Error("failed to write response", zap.Error(err))
	}
}

// backendError maps a catalog client failure onto a proxy response. Backend
// 404s pass through; everything else is a bad gateway.
func backendError(w http.ResponseWriter, err error, msg string) {
	logger.Warn(msg, zap.Error(err))
	var statusErr *fetch.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		http.Error(w, "buddy not found", http.StatusNotFound)
		return
	}
	http.Error(w, msg, http.StatusBadGateway)
}

// clientIP extracts the caller address for rate limiting.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// wantsJSON reports whether the request speaks JSON rather than form posts.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
