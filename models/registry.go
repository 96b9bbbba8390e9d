package models

// All is the registry handed to AutoMigrate, ordered parents first so
// foreign keys resolve as tables are created.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Landlord{},
		&Tenant{},
		&MaintenancePerson{},
		&Property{},
		&Unit{},
		&TenantUnit{},
		&Lease{},
		&Payment{},
		&MaintenanceRequest{},
		&UnitMaintenanceRequest{},
	}
}
