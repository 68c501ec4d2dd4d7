package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/middleware"
)

// SessionHeader carries the client's session id. Anonymous requests without
// it share the default session slot, matching the single-browser-session
// behaviour the web client started with.
const SessionHeader = "X-Session-ID"

// sessionID resolves the store slot for a request: the X-Session-ID header
// when present, otherwise the authenticated user's id, otherwise "".
func sessionID(r *http.Request) string {
	if sid := r.Header.Get(SessionHeader); sid != "" {
		return sid
	}
	if userID, ok := middleware.UserIDFromCtx(r); ok {
		return fmt.Sprintf("user-%d", userID)
	}
	return ""
}

func uintParam(r *http.Request, name string) (uint, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func queryInt(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return v
}

func queryFloat(r *http.Request, name string, fallback float64) float64 {
	v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64)
	if err != nil {
		return fallback
	}
	return v
}
