package main

import (
	"fmt"
	"net/http"

	"rental-service/config"
	"rental-service/handlers"
	"rental-service/middlewares"
	"rental-service/models"
	"rental-service/store"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	mux := http.NewServeMux()
	db, err := gorm.Open(postgres.Open(config.Config.DSN), &gorm.Config{})

	defer config.Config.Logger.Sync()
	if err != nil {
		config.Config.Logger.Fatalf("database connection error %v\n", err)
	}
	config.Config.Logger.Info("database connected")
	err = db.AutoMigrate(models.All()...)
	if err != nil {
		config.Config.Logger.Fatalf("error while running migration: %v", err.Error())
	}
	config.Config.Logger.Info("migration was successfull")
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Api is healthy")
	})

	st := store.New(db)
	authMiddleware := &middlewares.AuthMiddleware{Db: db}

	handlers.SetupAuthRoutes(mux, st)
	handlers.SetupLandlordRoutes(mux, st, authMiddleware)
	handlers.SetupTenantRoutes(mux, st, authMiddleware)
	handlers.SetupMaintenanceRoutes(mux, st, authMiddleware)

	handler := middlewares.Cors(config.Config.AllowedOrigin)(mux)

	config.Config.Logger.Infof("server is runnning on %s", config.Config.ServerPort)
	http.ListenAndServe(fmt.Sprintf(":%s", config.Config.ServerPort), handler)
}
