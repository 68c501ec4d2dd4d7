// Package rbac gates routes on the marketplace's three roles:
// customer, seller, admin.
package rbac

import (
	"net/http"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/collection"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/middleware"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
)

// HasRole allows access only to users carrying one of the given roles.
// Requires middleware.Auth to have already run.
func HasRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r)
			if !ok || !collection.Contains(roles, func(allowed string) bool { return allowed == role }) {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Guest blocks authenticated users (login and signup pages).
func Guest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserIDFromCtx(r); ok {
			response.Error(w, http.StatusConflict, "Already authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}
