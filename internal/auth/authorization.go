package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Authorization builds the middleware guards used on protected route groups.
type Authorization struct {
	logger *slog.Logger
}

func NewAuthorization(logger *slog.Logger) *Authorization {
	return &Authorization{logger: logger}
}

// RequireAdmin passes only when the resolved role name is exactly "admin".
// The permission map does not matter here; admin is a privilege independent
// of it.
func (a *Authorization) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !user.IsAdmin() {
				a.logger.Warn("access denied: admin role required",
					"user_id", user.ID,
					"role", user.RoleName)
				writeAuthError(w, http.StatusForbidden, "admin role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission passes for admin, an "all" grant, or an explicit grant of
// the named permission. The 403 names the missing permission.
func (a *Authorization) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				writeAuthError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !user.HasPermission(permission) {
				a.logger.Warn("access denied: missing permission",
					"user_id", user.ID,
					"role", user.RoleName,
					"required_permission", permission)
				writeAuthError(w, http.StatusForbidden, fmt.Sprintf("missing permission: %s", permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error": map[string]interface{}{
			"code":    status,
			"message": message,
		},
	})
}
