package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-service/config"
	"rental-service/handlers"
	"rental-service/middlewares"
	"rental-service/models"
	"rental-service/store"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "pass-word-1"

func setupServer(t *testing.T) (*http.ServeMux, *gorm.DB) {
	config.Config.TokenSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	st := store.New(db)
	am := &middlewares.AuthMiddleware{Db: db}
	mux := http.NewServeMux()
	handlers.SetupAuthRoutes(mux, st)
	handlers.SetupLandlordRoutes(mux, st, am)
	handlers.SetupTenantRoutes(mux, st, am)
	handlers.SetupMaintenanceRoutes(mux, st, am)
	return mux, db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.RoleType) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: string(hash), Phone: "555-0000", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTenantUser(t *testing.T, db *gorm.DB, email string) (models.User, models.Tenant) {
	user := createUser(t, db, "Tenant "+email, email, models.TenantRole)
	tenant := models.Tenant{UserID: user.ID, ContactDetails: "next of kin", LeaseStatus: "Active"}
	require.NoError(t, db.Create(&tenant).Error)
	return user, tenant
}

func createUnitFor(t *testing.T, db *gorm.DB, email string) models.Unit {
	owner := createUser(t, db, "Landlord "+email, email, models.LandlordRole)
	landlord := models.Landlord{UserID: owner.ID, LicenseNumber: "LL-1", CompanyName: "Acme Homes", TaxID: "11-111"}
	require.NoError(t, db.Create(&landlord).Error)
	property := models.Property{LandlordID: landlord.ID, Address: "12 Elm Street", Type: "Apartment"}
	require.NoError(t, db.Create(&property).Error)
	unit := models.Unit{PropertyID: property.ID, UnitNumber: "1A", Size: 60}
	require.NoError(t, db.Create(&unit).Error)
	return unit
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// loginAs exercises the real login endpoint and returns the issued token.
func loginAs(t *testing.T, mux *http.ServeMux, email string) string {
	rec := doJSON(t, mux, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var parsed struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	require.True(t, parsed.Success)
	require.NotEmpty(t, parsed.Token)
	return parsed.Token
}
