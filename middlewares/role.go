package middlewares

import (
	"net/http"

	"rental-service/helper"
	"rental-service/models"
)

func RequireRole(roles ...models.RoleType) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				helper.WriteJsonError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			found := false
			for _, role := range roles {
				if user.Role == role {
					found = true
					break
				}
			}
			if !found {
				helper.WriteJsonError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
