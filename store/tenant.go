package store

import (
	"context"

	"rental-service/dto"
	"rental-service/models"

	"gorm.io/gorm"
)

const recentLimit = 5

// TenantDashboard assembles the tenant view as one scalar query plus
// separate list queries, so leases, payments, and requests never fan out
// against each other.
func (s *Store) TenantDashboard(ctx context.Context, userID uint) (*dto.TenantDashboard, error) {
	db := s.db.WithContext(ctx)

	var row struct {
		TenantID       uint
		Name           string
		Email          string
		Phone          string
		ContactDetails string
		LeaseStatus    string
	}
	err := s.withRetry(func() error {
		result := db.Model(&models.User{}).
			Select("tenants.id AS tenant_id, users.name, users.email, users.phone, tenants.contact_details, tenants.lease_status").
			Joins("JOIN tenants ON tenants.user_id = users.id").
			Where("users.id = ?", userID).
			Scan(&row)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dashboard := &dto.TenantDashboard{
		Name:                row.Name,
		Email:               row.Email,
		Phone:               row.Phone,
		ContactDetails:      row.ContactDetails,
		LeaseStatus:         row.LeaseStatus,
		RecentPayments:      []dto.PaymentEntry{},
		MaintenanceRequests: []dto.RequestEntry{},
	}

	// Current residence: the most recent unit association.
	var residence struct {
		UnitNumber string
		Address    string
	}
	err = s.withRetry(func() error {
		return db.Model(&models.TenantUnit{}).
			Select("units.unit_number, properties.address").
			Joins("JOIN units ON units.id = tenant_units.unit_id").
			Joins("JOIN properties ON properties.id = units.property_id").
			Where("tenant_units.tenant_id = ?", row.TenantID).
			Order("tenant_units.created_at DESC").
			Limit(1).
			Scan(&residence).Error
	})
	if err != nil {
		return nil, err
	}
	dashboard.UnitNumber = residence.UnitNumber
	dashboard.Address = residence.Address

	var leases []models.Lease
	err = s.withRetry(func() error {
		return db.Where("tenant_id = ?", row.TenantID).
			Order("start_date DESC").
			Limit(1).
			Find(&leases).Error
	})
	if err != nil {
		return nil, err
	}
	if len(leases) > 0 {
		lease := leases[0]
		dashboard.RentAmount = lease.RentAmount
		dashboard.StartDate = &lease.StartDate
		dashboard.EndDate = lease.EndDate
	}

	var paid struct {
		PaidPayments int64
		TotalPaid    float64
	}
	err = s.withRetry(func() error {
		return db.Model(&models.Payment{}).
			Select("COUNT(*) AS paid_payments, COALESCE(SUM(payments.amount), 0) AS total_paid").
			Joins("JOIN leases ON leases.id = payments.lease_id").
			Where("leases.tenant_id = ? AND payments.status = ?", row.TenantID, models.PaymentPaid).
			Scan(&paid).Error
	})
	if err != nil {
		return nil, err
	}
	dashboard.PaidPayments = paid.PaidPayments
	dashboard.TotalPaid = paid.TotalPaid

	err = s.withRetry(func() error {
		return s.recentPayments(db, row.TenantID, &dashboard.RecentPayments)
	})
	if err != nil {
		return nil, err
	}

	err = s.withRetry(func() error {
		return db.Model(&models.MaintenanceRequest{}).
			Select("maintenance_requests.id AS request_id, maintenance_requests.submission_date, maintenance_requests.description, maintenance_requests.priority, maintenance_requests.status").
			Where("tenant_id = ?", row.TenantID).
			Order("submission_date DESC").
			Limit(recentLimit).
			Scan(&dashboard.MaintenanceRequests).Error
	})
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (s *Store) recentPayments(db *gorm.DB, tenantID uint, out *[]dto.PaymentEntry) error {
	return db.Model(&models.Payment{}).
		Select("payments.id AS payment_id, payments.payment_date, payments.amount, payments.status").
		Joins("JOIN leases ON leases.id = payments.lease_id").
		Where("leases.tenant_id = ?", tenantID).
		Order("payments.payment_date DESC").
		Limit(recentLimit).
		Scan(out).Error
}
