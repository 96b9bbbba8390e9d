package store_test

import (
	"context"
	"testing"
	"time"

	"rental-service/dto"
	"rental-service/models"
	"rental-service/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.RoleType) models.User {
	user := models.User{Name: name, Email: email, Password: "x", Phone: "555-0000", Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createLandlord(t *testing.T, db *gorm.DB, email string) (models.User, models.Landlord) {
	user := createUser(t, db, "Landlord "+email, email, models.LandlordRole)
	landlord := models.Landlord{UserID: user.ID, LicenseNumber: "LL-1", CompanyName: "Acme Homes", TaxID: "11-111"}
	require.NoError(t, db.Create(&landlord).Error)
	return user, landlord
}

func createTenant(t *testing.T, db *gorm.DB, email string) (models.User, models.Tenant) {
	user := createUser(t, db, "Tenant "+email, email, models.TenantRole)
	tenant := models.Tenant{UserID: user.ID, ContactDetails: "next of kin", LeaseStatus: "Active"}
	require.NoError(t, db.Create(&tenant).Error)
	return user, tenant
}

func createStaff(t *testing.T, db *gorm.DB, email string) (models.User, models.MaintenancePerson) {
	user := createUser(t, db, "Staff "+email, email, models.MaintenanceRole)
	person := models.MaintenancePerson{UserID: user.ID, Skills: "Plumbing", Certifications: "EPA 608", Availability: "Weekdays"}
	require.NoError(t, db.Create(&person).Error)
	return user, person
}

func createUnit(t *testing.T, db *gorm.DB, landlordID uint, address, number string) models.Unit {
	property := models.Property{LandlordID: landlordID, Address: address, Type: "Apartment"}
	require.NoError(t, db.Create(&property).Error)
	unit := models.Unit{PropertyID: property.ID, UnitNumber: number, Size: 60}
	require.NoError(t, db.Create(&unit).Error)
	return unit
}

func TestLandlordDashboardCounts(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	user, landlord := createLandlord(t, db, "owner@example.com")

	first := models.Property{LandlordID: landlord.ID, Address: "12 Elm Street", Type: "Apartment"}
	second := models.Property{LandlordID: landlord.ID, Address: "48 Oak Avenue", Type: "Duplex"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	for _, unit := range []models.Unit{
		{PropertyID: first.ID, UnitNumber: "1A", Size: 55},
		{PropertyID: first.ID, UnitNumber: "1B", Size: 58},
		{PropertyID: second.ID, UnitNumber: "2", Size: 90},
	} {
		u := unit
		require.NoError(t, db.Create(&u).Error)
	}

	// Another landlord's portfolio must not leak into the counts.
	_, other := createLandlord(t, db, "other@example.com")
	createUnit(t, db, other.ID, "99 Pine Road", "3C")

	dashboard, err := st.LandlordDashboard(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, dashboard.Name)
	assert.Equal(t, "LL-1", dashboard.LicenseNumber)
	assert.Equal(t, "Acme Homes", dashboard.CompanyName)
	assert.Equal(t, int64(2), dashboard.TotalProperties)
	assert.Equal(t, int64(3), dashboard.TotalUnits)
}

func TestLandlordDashboardNotFound(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	// A user without a landlord row resolves the same as an unknown id.
	user := createUser(t, db, "No Role", "norole@example.com", models.TenantRole)

	_, err := st.LandlordDashboard(context.Background(), user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.LandlordDashboard(context.Background(), 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTenantDashboard(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	user, tenant := createTenant(t, db, "renter@example.com")
	_, landlord := createLandlord(t, db, "owner@example.com")
	unit := createUnit(t, db, landlord.ID, "12 Elm Street", "1A")
	require.NoError(t, db.Create(&models.TenantUnit{TenantID: tenant.ID, UnitID: unit.ID}).Error)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	lease := models.Lease{TenantID: tenant.ID, StartDate: start, RentAmount: 1450, SecurityDeposit: 1450}
	require.NoError(t, db.Create(&lease).Error)

	// 7 paid payments: recentPayments must cap at 5, newest first.
	for month := 0; month < 7; month++ {
		payment := models.Payment{
			LeaseID:     lease.ID,
			PaymentDate: start.AddDate(0, month, 0),
			Amount:      1450,
			Status:      models.PaymentPaid,
		}
		require.NoError(t, db.Create(&payment).Error)
	}
	pending := models.Payment{LeaseID: lease.ID, PaymentDate: start.AddDate(0, 7, 0), Amount: 1450, Status: models.PaymentPending}
	require.NoError(t, db.Create(&pending).Error)

	for day := 0; day < 6; day++ {
		req := models.MaintenanceRequest{
			TenantID:       tenant.ID,
			Description:    "issue",
			Status:         models.RequestPending,
			Priority:       models.PriorityLow,
			SubmissionDate: start.AddDate(0, 0, day),
		}
		require.NoError(t, db.Create(&req).Error)
	}

	dashboard, err := st.TenantDashboard(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.Name, dashboard.Name)
	assert.Equal(t, "12 Elm Street", dashboard.Address)
	assert.Equal(t, "1A", dashboard.UnitNumber)
	assert.Equal(t, "Active", dashboard.LeaseStatus)
	assert.Equal(t, 1450.0, dashboard.RentAmount)
	require.NotNil(t, dashboard.StartDate)
	assert.Nil(t, dashboard.EndDate)

	assert.Equal(t, int64(7), dashboard.PaidPayments)
	assert.Equal(t, 7*1450.0, dashboard.TotalPaid)

	require.Len(t, dashboard.RecentPayments, 5)
	for i := 1; i < len(dashboard.RecentPayments); i++ {
		assert.False(t, dashboard.RecentPayments[i-1].PaymentDate.Before(dashboard.RecentPayments[i].PaymentDate),
			"recent payments must be ordered newest first")
	}
	// The pending payment is the newest, so it leads the list.
	assert.Equal(t, string(models.PaymentPending), dashboard.RecentPayments[0].Status)

	require.Len(t, dashboard.MaintenanceRequests, 5)
	for i := 1; i < len(dashboard.MaintenanceRequests); i++ {
		assert.False(t, dashboard.MaintenanceRequests[i-1].SubmissionDate.Before(dashboard.MaintenanceRequests[i].SubmissionDate))
	}
}

func TestTenantDashboardNotFound(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	user, _ := createLandlord(t, db, "owner@example.com")

	_, err := st.TenantDashboard(context.Background(), user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMaintenanceDashboardOrdering(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	user, person := createStaff(t, db, "fixer@example.com")
	_, tenant := createTenant(t, db, "renter@example.com")
	_, landlord := createLandlord(t, db, "owner@example.com")
	unit := createUnit(t, db, landlord.ID, "12 Elm Street", "1A")

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	// Inserted deliberately out of the expected order.
	fixtures := []struct {
		desc     string
		status   models.RequestStatus
		priority models.RequestPriority
		day      int
	}{
		{"completed high", models.RequestCompleted, models.PriorityHigh, 9},
		{"pending low", models.RequestPending, models.PriorityLow, 8},
		{"in progress medium", models.RequestInProgress, models.PriorityMedium, 7},
		{"pending high old", models.RequestPending, models.PriorityHigh, 1},
		{"pending high new", models.RequestPending, models.PriorityHigh, 6},
		{"pending medium", models.RequestPending, models.PriorityMedium, 9},
	}
	for _, f := range fixtures {
		req := models.MaintenanceRequest{
			TenantID:            tenant.ID,
			Description:         f.desc,
			Status:              f.status,
			Priority:            f.priority,
			SubmissionDate:      base.AddDate(0, 0, f.day),
			MaintenancePersonID: &person.ID,
		}
		require.NoError(t, db.Create(&req).Error)
		require.NoError(t, db.Create(&models.UnitMaintenanceRequest{UnitID: unit.ID, MaintenanceRequestID: req.ID}).Error)
	}

	dashboard, err := st.MaintenanceDashboard(context.Background(), user.ID)
	require.NoError(t, err)

	got := make([]string, 0, len(dashboard.Requests))
	for _, r := range dashboard.Requests {
		got = append(got, r.Description)
	}
	assert.Equal(t, []string{
		"pending high new",
		"pending high old",
		"pending medium",
		"pending low",
		"in progress medium",
		"completed high",
	}, got)

	assert.Equal(t, dto.RequestStats{
		TotalRequests:      6,
		CompletedRequests:  1,
		InProgressRequests: 1,
		PendingRequests:    4,
	}, dashboard.Stats)

	first := dashboard.Requests[0]
	assert.Equal(t, "12 Elm Street", first.PropertyAddress)
	assert.Equal(t, "1A", first.UnitNumber)
	assert.Equal(t, "Tenant renter@example.com", first.TenantName)
}

func TestMaintenanceDashboardNotFound(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	user, _ := createTenant(t, db, "renter@example.com")

	_, err := st.MaintenanceDashboard(context.Background(), user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateMaintenanceRequest(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	_, tenant := createTenant(t, db, "renter@example.com")
	_, landlord := createLandlord(t, db, "owner@example.com")
	unit := createUnit(t, db, landlord.ID, "12 Elm Street", "1A")

	created, err := st.CreateMaintenanceRequest(context.Background(), dto.CreateMaintenanceRequestDto{
		TenantID:    tenant.ID,
		Description: "Leaking faucet",
		Priority:    "High",
		UnitID:      unit.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.RequestID)
	assert.NotZero(t, created.AssociationID)
	assert.Equal(t, tenant.ID, created.TenantID)
	assert.Equal(t, unit.ID, created.UnitID)
	assert.Equal(t, string(models.RequestPending), created.Status)
	assert.Equal(t, "High", created.Priority)

	now := time.Now()
	assert.Equal(t, now.Year(), created.SubmissionDate.Year())
	assert.Equal(t, now.YearDay(), created.SubmissionDate.YearDay())

	var association models.UnitMaintenanceRequest
	require.NoError(t, db.Where("maintenance_request_id = ?", created.RequestID).First(&association).Error)
	assert.Equal(t, unit.ID, association.UnitID)
}

func TestCreateMaintenanceRequestRollsBack(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	_, tenant := createTenant(t, db, "renter@example.com")

	// The unit does not exist, so the association insert violates its
	// foreign key after the request insert has already succeeded.
	_, err := st.CreateMaintenanceRequest(context.Background(), dto.CreateMaintenanceRequestDto{
		TenantID:    tenant.ID,
		Description: "Leaking faucet",
		Priority:    "High",
		UnitID:      9999,
	})
	require.Error(t, err)

	var requests int64
	require.NoError(t, db.Model(&models.MaintenanceRequest{}).Count(&requests).Error)
	assert.Equal(t, int64(0), requests, "request insert must roll back with the failed association")
}

func TestFindUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(db)

	user := createUser(t, db, "Grace", "grace@example.com", models.LandlordRole)

	found, err := st.FindUserByEmail(context.Background(), "grace@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, models.LandlordRole, found.Role)

	_, err = st.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
