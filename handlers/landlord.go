package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"rental-service/config"
	"rental-service/helper"
	"rental-service/middlewares"
	"rental-service/models"
	"rental-service/store"
)

type LandlordHandler struct {
	store *store.Store
}

func SetupLandlordRoutes(mux *http.ServeMux, st *store.Store, am *middlewares.AuthMiddleware) {
	handler := LandlordHandler{
		store: st,
	}
	mux.HandleFunc("GET /landlord/{userId}", am.RequireAuth(middlewares.RequireRole(models.LandlordRole)(handler.dashboard)))
}

func (l *LandlordHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if !callerIs(r, userID) {
		helper.WriteJsonError(w, http.StatusForbidden, "Insufficient permissions")
		return
	}

	landlord, err := l.store.LandlordDashboard(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helper.WriteJsonError(w, http.StatusNotFound, "Landlord not found")
			return
		}
		config.Config.Logger.Errorf("Database error fetching landlord dashboard: %v", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "database error")
		return
	}

	helper.WriteJson(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"landlord": landlord,
	})
}

func pathUserID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("userId"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// callerIs reports whether the authenticated user is the one the path names.
// A valid token for one landlord must not open another landlord's dashboard.
func callerIs(r *http.Request, userID uint) bool {
	caller := middlewares.GetUserFromContext(r.Context())
	return caller != nil && caller.ID == userID
}
