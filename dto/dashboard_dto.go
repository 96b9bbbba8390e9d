package dto

import "time"

// Typed result shapes for the per-role dashboard projections. Field names
// follow the wire contract the dashboards consume.

type LandlordDashboard struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	LicenseNumber   string `json:"licenseNumber"`
	CompanyName     string `json:"companyName"`
	TaxID           string `json:"taxID"`
	TotalProperties int64  `json:"totalProperties"`
	TotalUnits      int64  `json:"totalUnits"`
}

type PaymentEntry struct {
	PaymentID   uint      `json:"paymentID"`
	PaymentDate time.Time `json:"paymentDate"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
}

type RequestEntry struct {
	RequestID      uint      `json:"requestID"`
	SubmissionDate time.Time `json:"submissionDate"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
}

type TenantDashboard struct {
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	ContactDetails      string         `json:"contactDetails"`
	LeaseStatus         string         `json:"leaseStatus"`
	Address             string         `json:"address"`
	UnitNumber          string         `json:"unitNumber"`
	RentAmount          float64        `json:"rentAmount"`
	StartDate           *time.Time     `json:"startDate"`
	EndDate             *time.Time     `json:"endDate"`
	PaidPayments        int64          `json:"paidPayments"`
	TotalPaid           float64        `json:"totalPaid"`
	RecentPayments      []PaymentEntry `json:"recentPayments"`
	MaintenanceRequests []RequestEntry `json:"maintenanceRequests"`
}

// AssignedRequest is a RequestEntry enriched with where the problem is and
// who reported it, for the maintenance dashboard's work list.
type AssignedRequest struct {
	RequestEntry
	PropertyAddress string `json:"propertyAddress"`
	UnitNumber      string `json:"unitNumber"`
	TenantName      string `json:"tenantName"`
}

type RequestStats struct {
	TotalRequests      int64 `json:"totalRequests"`
	CompletedRequests  int64 `json:"completedRequests"`
	InProgressRequests int64 `json:"inProgressRequests"`
	PendingRequests    int64 `json:"pendingRequests"`
}

type MaintenanceDashboard struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Skills         string            `json:"skills"`
	Certifications string            `json:"certifications"`
	Availability   string            `json:"availability"`
	Requests       []AssignedRequest `json:"requests"`
	Stats          RequestStats      `json:"stats"`
}

type CreatedRequest struct {
	RequestID      uint      `json:"requestID"`
	TenantID       uint      `json:"tenantId"`
	UnitID         uint      `json:"unitId"`
	AssociationID  uint      `json:"unitRequestID"`
	Description    string    `json:"description"`
	Priority       string    `json:"priority"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submissionDate"`
}
