package models

import "gorm.io/gorm"

type Tenant struct {
	gorm.Model
	UserID         uint `gorm:"uniqueIndex"`
	User           User
	ContactDetails string `json:"contactDetails"`
	LeaseStatus    string `json:"leaseStatus"`
}

// TenantUnit links tenants to units. A unit may house multiple tenants over
// time and a tenant may hold multiple units, so the relation is a join table
// rather than a foreign key on Lease.
type TenantUnit struct {
	gorm.Model
	TenantID uint `gorm:"index"`
	Tenant   Tenant
	UnitID   uint `gorm:"index"`
	Unit     Unit
}
