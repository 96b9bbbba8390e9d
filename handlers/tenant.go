package handlers

import (
	"errors"
	"net/http"

	"rental-service/config"
	"rental-service/helper"
	"rental-service/middlewares"
	"rental-service/models"
	"rental-service/store"
)

type TenantHandler struct {
	store *store.Store
}

func SetupTenantRoutes(mux *http.ServeMux, st *store.Store, am *middlewares.AuthMiddleware) {
	handler := TenantHandler{
		store: st,
	}
	mux.HandleFunc("GET /tenant/{userId}", am.RequireAuth(middlewares.RequireRole(models.TenantRole)(handler.dashboard)))
}

func (t *TenantHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if !callerIs(r, userID) {
		helper.WriteJsonError(w, http.StatusForbidden, "Insufficient permissions")
		return
	}

	tenant, err := t.store.TenantDashboard(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helper.WriteJsonError(w, http.StatusNotFound, "Tenant not found")
			return
		}
		config.Config.Logger.Errorf("Database error fetching tenant dashboard: %v", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "database error")
		return
	}

	helper.WriteJson(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tenant":  tenant,
	})
}
