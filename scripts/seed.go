package main

import (
	"fmt"
	"time"

	"rental-service/models"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedCmd loads a demo dataset: one user per role, a landlord portfolio, a
// tenancy with lease and payments, and a few maintenance requests. User
// provisioning has no endpoint, so this is how a fresh database becomes
// usable.
func SeedCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(models.All()...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			var existing int64
			if err := db.Model(&models.User{}).Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				fmt.Println("database already has users, skipping seed")
				return nil
			}

			if err := db.Transaction(func(tx *gorm.DB) error {
				return seed(tx, password)
			}); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Println("demo dataset loaded")
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "changeme", "password assigned to every demo user")
	return cmd
}

func seed(tx *gorm.DB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	landlordUser := models.User{Name: "Grace Hall", Email: "grace@landlord.example", Password: string(hash), Phone: "555-0101", Role: models.LandlordRole}
	tenantUser := models.User{Name: "Tom Reed", Email: "tom@tenant.example", Password: string(hash), Phone: "555-0102", Role: models.TenantRole}
	staffUser := models.User{Name: "Ana Cruz", Email: "ana@staff.example", Password: string(hash), Phone: "555-0103", Role: models.MaintenanceRole}
	for _, u := range []*models.User{&landlordUser, &tenantUser, &staffUser} {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
	}

	landlord := models.Landlord{UserID: landlordUser.ID, LicenseNumber: "LL-2047", CompanyName: "Hall Properties", TaxID: "94-1234567"}
	if err := tx.Create(&landlord).Error; err != nil {
		return err
	}
	tenant := models.Tenant{UserID: tenantUser.ID, ContactDetails: "Jane Reed 555-0199", LeaseStatus: "Active"}
	if err := tx.Create(&tenant).Error; err != nil {
		return err
	}
	staff := models.MaintenancePerson{UserID: staffUser.ID, Skills: "Plumbing, Electrical", Certifications: "EPA 608", Availability: "Weekdays"}
	if err := tx.Create(&staff).Error; err != nil {
		return err
	}

	property := models.Property{LandlordID: landlord.ID, Address: "12 Elm Street", Type: "Apartment"}
	if err := tx.Create(&property).Error; err != nil {
		return err
	}
	second := models.Property{LandlordID: landlord.ID, Address: "48 Oak Avenue", Type: "Duplex"}
	if err := tx.Create(&second).Error; err != nil {
		return err
	}

	units := []models.Unit{
		{PropertyID: property.ID, UnitNumber: "1A", Size: 62.5},
		{PropertyID: property.ID, UnitNumber: "1B", Size: 58.0},
		{PropertyID: second.ID, UnitNumber: "2", Size: 90.0},
	}
	for i := range units {
		if err := tx.Create(&units[i]).Error; err != nil {
			return err
		}
	}

	if err := tx.Create(&models.TenantUnit{TenantID: tenant.ID, UnitID: units[0].ID}).Error; err != nil {
		return err
	}

	start := time.Now().AddDate(0, -6, 0)
	lease := models.Lease{TenantID: tenant.ID, StartDate: start, RentAmount: 1450, SecurityDeposit: 1450}
	if err := tx.Create(&lease).Error; err != nil {
		return err
	}

	for month := 0; month < 6; month++ {
		status := models.PaymentPaid
		if month == 5 {
			status = models.PaymentPending
		}
		payment := models.Payment{
			LeaseID:     lease.ID,
			PaymentDate: start.AddDate(0, month, 0),
			Amount:      lease.RentAmount,
			Status:      status,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
	}

	requests := []models.MaintenanceRequest{
		{TenantID: tenant.ID, Description: "Leaking kitchen faucet", Status: models.RequestPending, Priority: models.PriorityHigh, SubmissionDate: time.Now().AddDate(0, 0, -2), MaintenancePersonID: &staff.ID},
		{TenantID: tenant.ID, Description: "Hallway light flickers", Status: models.RequestInProgress, Priority: models.PriorityMedium, SubmissionDate: time.Now().AddDate(0, 0, -10), MaintenancePersonID: &staff.ID},
		{TenantID: tenant.ID, Description: "Repaint balcony rail", Status: models.RequestCompleted, Priority: models.PriorityLow, SubmissionDate: time.Now().AddDate(0, -1, 0), MaintenancePersonID: &staff.ID},
	}
	for i := range requests {
		if err := tx.Create(&requests[i]).Error; err != nil {
			return err
		}
		assoc := models.UnitMaintenanceRequest{UnitID: units[0].ID, MaintenanceRequestID: requests[i].ID}
		if err := tx.Create(&assoc).Error; err != nil {
			return err
		}
	}

	return nil
}
