package api

import (
	"net/http"
	"strings"
	"time"

	"campusbooking/internal/user"
	"campusbooking/pkg/config"
	"campusbooking/pkg/token"
)

// BearerAuth validates the Authorization header and attaches the resolved
// actor to the request context.
//
// Expected header:
// - Authorization: Bearer <JWT>
//
// The user record is reloaded on each request so a role change or deletion
// takes effect before the token expires.
func BearerAuth(cfg config.Config, users *user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := strings.TrimSpace(r.Header.Get("Authorization"))
			if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
				return
			}

			id, err := token.Verify(strings.TrimSpace(authz[7:]), cfg.JWT.Secret, time.Now())
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
				return
			}

			u, err := users.GetByID(r.Context(), id.UserID)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
				return
			}

			actor := &Actor{ID: u.ID, Role: u.Role, Name: u.Name, Email: u.Email}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole guards a route group behind a single role. It assumes
// BearerAuth already ran.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := ActorFromContext(r.Context())
			if actor == nil {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
				return
			}
			if actor.Role != role {
				WriteError(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
