package models

import "gorm.io/gorm"

type RoleType string

const (
	LandlordRole    RoleType = "Landlord"
	TenantRole      RoleType = "Tenant"
	MaintenanceRole RoleType = "MaintenancePerson"
)

// Roles is the closed set of roles a user may hold. Role dispatch goes
// through this enumeration, never through free-form strings.
var Roles = []RoleType{LandlordRole, TenantRole, MaintenanceRole}

func (r RoleType) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	gorm.Model
	Name     string   `json:"name"`
	Email    string   `json:"email" gorm:"uniqueIndex"`
	Password string   `json:"-"`
	Phone    string   `json:"phone"`
	Role     RoleType `json:"userType"`
}
