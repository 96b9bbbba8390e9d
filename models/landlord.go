package models

import "gorm.io/gorm"

type Landlord struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex"`
	User          User
	LicenseNumber string `json:"licenseNumber"`
	CompanyName   string `json:"companyName"`
	TaxID         string `json:"taxID"`
}
