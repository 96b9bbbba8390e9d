package store

import (
	"context"

	"rental-service/dto"
	"rental-service/models"
)

// LandlordDashboard resolves a user id to its landlord row and aggregates
// property and unit totals. The counts run as separate queries so the
// one-to-many joins cannot fan the scalar row out.
func (s *Store) LandlordDashboard(ctx context.Context, userID uint) (*dto.LandlordDashboard, error) {
	db := s.db.WithContext(ctx)

	var row struct {
		LandlordID    uint
		Name          string
		Email         string
		Phone         string
		LicenseNumber string
		CompanyName   string
		TaxID         string
	}
	err := s.withRetry(func() error {
		result := db.Model(&models.User{}).
			Select("landlords.id AS landlord_id, users.name, users.email, users.phone, landlords.license_number, landlords.company_name, landlords.tax_id").
			Joins("JOIN landlords ON landlords.user_id = users.id").
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

	var totalProperties int64
	err = s.withRetry(func() error {
		return db.Model(&models.Property{}).
			Where("landlord_id = ?", row.LandlordID).
			Count(&totalProperties).Error
	})
	if err != nil {
		return nil, err
	}

	var totalUnits int64
	err = s.withRetry(func() error {
		return db.Model(&models.Unit{}).
			Joins("JOIN properties ON properties.id = units.property_id").
			Where("properties.landlord_id = ?", row.LandlordID).
			Count(&totalUnits).Error
	})
	if err != nil {
		return nil, err
	}

	return &dto.LandlordDashboard{
		Name:            row.Name,
		Email:           row.Email,
		Phone:           row.Phone,
		LicenseNumber:   row.LicenseNumber,
		CompanyName:     row.CompanyName,
		TaxID:           row.TaxID,
		TotalProperties: totalProperties,
		TotalUnits:      totalUnits,
	}, nil
}
