package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrLeaseDatesInverted = errors.New("lease end date precedes start date")
	ErrNegativeAmount     = errors.New("payment amount must be non-negative")
)

type Lease struct {
	gorm.Model
	TenantID        uint `gorm:"index"`
	Tenant          Tenant
	StartDate       time.Time  `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	RentAmount      float64    `json:"rentAmount"`
	SecurityDeposit float64    `json:"securityDeposit"`
}

// An open-ended lease has no end date; when one is set it may not precede
// the start date.
func (l *Lease) BeforeSave(tx *gorm.DB) error {
	if l.EndDate != nil && l.EndDate.Before(l.StartDate) {
		return ErrLeaseDatesInverted
	}
	return nil
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

type Payment struct {
	gorm.Model
	LeaseID     uint `gorm:"index"`
	Lease       Lease
	PaymentDate time.Time     `json:"paymentDate"`
	Amount      float64       `json:"amount" gorm:"check:amount >= 0"`
	Status      PaymentStatus `json:"status"`
}

func (p *Payment) BeforeSave(tx *gorm.DB) error {
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
