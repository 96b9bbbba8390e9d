package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"rental-service/config"
	"rental-service/helper"
	"rental-service/models"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"gorm.io/gorm"
)

type AuthMiddleware struct {
	Db *gorm.DB
}

// RequireAuth validates the bearer token and loads the user it names into
// the request context. Every failure class answers the same way so the
// client can only learn that the session is gone.
func (am *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			helper.WriteJsonError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(
			[]byte(raw),
			jwt.WithKey(jwa.HS256(), []byte(config.Config.TokenSecret)),
			jwt.WithValidate(true),
		)
		if err != nil {
			config.Config.Logger.Warn(err)
			helper.WriteJsonError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		userIDStr, ok := token.Subject()
		if !ok {
			config.Config.Logger.Debug("token carries no subject")
			helper.WriteJsonError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			config.Config.Logger.Debug("token subject is not a user id")
			helper.WriteJsonError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		var user models.User
		if err := am.Db.Where("id = ?", userID).First(&user).Error; err != nil {
			config.Config.Logger.Debugf("user %d from token not found", userID)
			helper.WriteJsonError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		ctx = context.WithValue(ctx, TokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func GetUserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(UserContextKey).(models.User); ok {
		return &user
	}
	return nil
}
