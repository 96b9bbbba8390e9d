package main

import (
	"fmt"

	"rental-service/config"
	"rental-service/models"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(models.All()...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Println("migrations completed")
			return nil
		},
	}
}

func openDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.Config.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
