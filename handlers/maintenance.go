package handlers

import (
	"errors"
	"net/http"
	"strings"

	"rental-service/config"
	"rental-service/dto"
	"rental-service/helper"
	"rental-service/middlewares"
	"rental-service/models"
	"rental-service/store"

	"github.com/go-playground/validator/v10"
)

type MaintenanceHandler struct {
	store *store.Store
}

func SetupMaintenanceRoutes(mux *http.ServeMux, st *store.Store, am *middlewares.AuthMiddleware) {
	handler := MaintenanceHandler{
		store: st,
	}
	mux.HandleFunc("GET /maintenance/{userId}", am.RequireAuth(middlewares.RequireRole(models.MaintenanceRole)(handler.dashboard)))
	mux.HandleFunc("POST /maintenance-request", am.RequireAuth(middlewares.RequireRole(models.TenantRole)(handler.createRequest)))
}

func (m *MaintenanceHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if !callerIs(r, userID) {
		helper.WriteJsonError(w, http.StatusForbidden, "Insufficient permissions")
		return
	}

	person, err := m.store.MaintenanceDashboard(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			helper.WriteJsonError(w, http.StatusNotFound, "Maintenance person not found")
			return
		}
		config.Config.Logger.Errorf("Database error fetching maintenance dashboard: %v", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "database error")
		return
	}

	helper.WriteJson(w, http.StatusOK, map[string]interface{}{
		"success":           true,
		"maintenancePerson": person,
	})
}

func (m *MaintenanceHandler) createRequest(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateMaintenanceRequestDto
	if err := helper.ReadJson(w, r, &payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := helper.Validator.Struct(payload); err != nil {
		helper.WriteJsonError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	config.Config.Logger.Infof("New maintenance request for tenant %d, unit %d", payload.TenantID, payload.UnitID)

	created, err := m.store.CreateMaintenanceRequest(r.Context(), payload)
	if err != nil {
		config.Config.Logger.Errorf("Error creating maintenance request: %v", err)
		helper.WriteJsonError(w, http.StatusInternalServerError, "Error creating request")
		return
	}

	helper.WriteJson(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"request": created,
	})
}

// validationMessage names the absent fields so the client can point at the
// form inputs that need filling.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(invalid, ", "))
	}
	return strings.Join(parts, "; ")
}
