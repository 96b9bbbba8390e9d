package store

import (
	"context"
	"time"

	"rental-service/dto"
	"rental-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Work-list ordering: open work first, urgent work first, newest first.
const (
	statusRankExpr   = "CASE maintenance_requests.status WHEN 'Pending' THEN 0 WHEN 'In Progress' THEN 1 ELSE 2 END"
	priorityRankExpr = "CASE maintenance_requests.priority WHEN 'High' THEN 0 WHEN 'Medium' THEN 1 ELSE 2 END"
)

func (s *Store) MaintenanceDashboard(ctx context.Context, userID uint) (*dto.MaintenanceDashboard, error) {
	db := s.db.WithContext(ctx)

	var row struct {
		PersonID       uint
		Name           string
		Email          string
		Phone          string
		Skills         string
		Certifications string
		Availability   string
	}
	err := s.withRetry(func() error {
		result := db.Model(&models.User{}).
			Select("maintenance_people.id AS person_id, users.name, users.email, users.phone, maintenance_people.skills, maintenance_people.certifications, maintenance_people.availability").
			Joins("JOIN maintenance_people ON maintenance_people.user_id = users.id").
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

	var assigned []struct {
		RequestID       uint
		SubmissionDate  time.Time
		Description     string
		Priority        string
		Status          string
		PropertyAddress string
		UnitNumber      string
		TenantName      string
	}
	err = s.withRetry(func() error {
		return db.Model(&models.MaintenanceRequest{}).
			Select("maintenance_requests.id AS request_id, maintenance_requests.submission_date, maintenance_requests.description, maintenance_requests.priority, maintenance_requests.status, properties.address AS property_address, units.unit_number, users.name AS tenant_name").
			Joins("JOIN unit_maintenance_requests ON unit_maintenance_requests.maintenance_request_id = maintenance_requests.id").
			Joins("JOIN units ON units.id = unit_maintenance_requests.unit_id").
			Joins("JOIN properties ON properties.id = units.property_id").
			Joins("JOIN tenants ON tenants.id = maintenance_requests.tenant_id").
			Joins("JOIN users ON users.id = tenants.user_id").
			Where("maintenance_requests.maintenance_person_id = ?", row.PersonID).
			Order(statusRankExpr).
			Order(priorityRankExpr).
			Order("maintenance_requests.submission_date DESC").
			Scan(&assigned).Error
	})
	if err != nil {
		return nil, err
	}

	requests := make([]dto.AssignedRequest, 0, len(assigned))
	for _, a := range assigned {
		requests = append(requests, dto.AssignedRequest{
			RequestEntry: dto.RequestEntry{
				RequestID:      a.RequestID,
				SubmissionDate: a.SubmissionDate,
				Description:    a.Description,
				Priority:       a.Priority,
				Status:         a.Status,
			},
			PropertyAddress: a.PropertyAddress,
			UnitNumber:      a.UnitNumber,
			TenantName:      a.TenantName,
		})
	}

	var grouped []struct {
		Status string
		N      int64
	}
	err = s.withRetry(func() error {
		return db.Model(&models.MaintenanceRequest{}).
			Select("status, COUNT(*) AS n").
			Where("maintenance_person_id = ?", row.PersonID).
			Group("status").
			Scan(&grouped).Error
	})
	if err != nil {
		return nil, err
	}
	var stats dto.RequestStats
	for _, g := range grouped {
		stats.TotalRequests += g.N
		switch models.RequestStatus(g.Status) {
		case models.RequestCompleted:
			stats.CompletedRequests = g.N
		case models.RequestInProgress:
			stats.InProgressRequests = g.N
		case models.RequestPending:
			stats.PendingRequests = g.N
		}
	}

	return &dto.MaintenanceDashboard{
		Name:           row.Name,
		Email:          row.Email,
		Phone:          row.Phone,
		Skills:         row.Skills,
		Certifications: row.Certifications,
		Availability:   row.Availability,
		Requests:       requests,
		Stats:          stats,
	}, nil
}

// CreateMaintenanceRequest inserts the request and its unit association
// inside one transaction. A request without a unit association is invalid,
// so a failure on either insert rolls both back.
func (s *Store) CreateMaintenanceRequest(ctx context.Context, payload dto.CreateMaintenanceRequestDto) (*dto.CreatedRequest, error) {
	var created dto.CreatedRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		request := models.MaintenanceRequest{
			TenantID:       payload.TenantID,
			Description:    payload.Description,
			Priority:       models.RequestPriority(payload.Priority),
			Status:         models.RequestPending,
			SubmissionDate: today(),
		}
		if err := tx.Omit(clause.Associations).Create(&request).Error; err != nil {
			return err
		}

		association := models.UnitMaintenanceRequest{
			UnitID:               payload.UnitID,
			MaintenanceRequestID: request.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&association).Error; err != nil {
			return err
		}

		result := tx.Model(&models.MaintenanceRequest{}).
			Select("maintenance_requests.id AS request_id, maintenance_requests.tenant_id, maintenance_requests.description, maintenance_requests.priority, maintenance_requests.status, maintenance_requests.submission_date, unit_maintenance_requests.id AS association_id, unit_maintenance_requests.unit_id").
			Joins("JOIN unit_maintenance_requests ON unit_maintenance_requests.maintenance_request_id = maintenance_requests.id").
			Where("maintenance_requests.id = ?", request.ID).
			Scan(&created)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
