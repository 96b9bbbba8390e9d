package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rental-service/config"
	"rental-service/dto"
	"rental-service/helper"
	"rental-service/models"
	"rental-service/store"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	store *store.Store
}

func SetupAuthRoutes(mux *http.ServeMux, st *store.Store) {
	handler := AuthHandler{
		store: st,
	}
	mux.HandleFunc("POST /auth/login", handler.login)
}

// dummyHash absorbs a bcrypt comparison when the email is unknown, so both
// failure paths cost the same and answer the same.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("rental-service"), bcrypt.DefaultCost)

func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var payload dto.LoginDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	config.Config.Logger.Infof("New login request for email: %s", payload.Email)

	user, err := a.store.FindUserByEmail(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(payload.Password))
			helper.WriteJsonError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		config.Config.Logger.Errorf("Database error during login: %v", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		helper.WriteJsonError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenRaw, err := issueToken(user)
	if err != nil {
		config.Config.Logger.Errorf("Token generation error: %v", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	config.Config.Logger.Infof("User logged in successfully: %s", user.Email)
	helper.WriteJson(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   string(tokenRaw),
		"user": dto.LoginUser{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			UserType: string(user.Role),
		},
	})
}

// issueToken signs a self-contained session token carrying the user's id,
// role, and email. There is no server-side session table.
func issueToken(user *models.User) ([]byte, error) {
	now := time.Now()
	token, err := jwt.NewBuilder().
		Subject(strconv.FormatUint(uint64(user.ID), 10)).
		IssuedAt(now).
		Expiration(now.Add(config.Config.TokenTTL)).
		Claim("userType", string(user.Role)).
		Claim("email", user.Email).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build token: %w", err)
	}
	return jwt.Sign(token, jwt.WithKey(jwa.HS256(), []byte(config.Config.TokenSecret)))
}
