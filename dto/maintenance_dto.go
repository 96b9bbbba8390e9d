package dto

type CreateMaintenanceRequestDto struct {
	TenantID    uint   `json:"tenantId" validate:"required"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=Low Medium High"`
	UnitID      uint   `json:"unitId" validate:"required"`
}
