package main

import (
	"log"

	"DermaGlow-Backend/cmd/config"
	"DermaGlow-Backend/cmd/database/migrate"
	"DermaGlow-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	migrate.Migrate(db)

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("App initialization failed: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
