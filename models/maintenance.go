package models

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestPending    RequestStatus = "Pending"
	RequestInProgress RequestStatus = "In Progress"
	RequestCompleted  RequestStatus = "Completed"
)

type RequestPriority string

const (
	PriorityLow    RequestPriority = "Low"
	PriorityMedium RequestPriority = "Medium"
	PriorityHigh   RequestPriority = "High"
)

func (p RequestPriority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type MaintenancePerson struct {
	gorm.Model
	UserID         uint `gorm:"uniqueIndex"`
	User           User
	Skills         string `json:"skills"`
	Certifications string `json:"certifications"`
	Availability   string `json:"availability"`
}

func (MaintenancePerson) TableName() string { return "maintenance_people" }

type MaintenanceRequest struct {
	gorm.Model
	TenantID            uint `gorm:"index"`
	Tenant              Tenant
	Description         string          `json:"description"`
	Status              RequestStatus   `json:"status"`
	Priority            RequestPriority `json:"priority"`
	SubmissionDate      time.Time       `json:"submissionDate"`
	MaintenancePersonID *uint           `gorm:"index"`
	MaintenancePerson   *MaintenancePerson
}

// UnitMaintenanceRequest ties a request to the unit it concerns. Every
// request has exactly one such row; a request without one is invalid, which
// is why creation inserts both inside a single transaction.
type UnitMaintenanceRequest struct {
	gorm.Model
	UnitID               uint `gorm:"index"`
	Unit                 Unit
	MaintenanceRequestID uint `gorm:"uniqueIndex"`
	MaintenanceRequest   MaintenanceRequest
}
