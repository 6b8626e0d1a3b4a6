package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/wyovotewatch/district-alerts-api/internal/app"
	"github.com/wyovotewatch/district-alerts-api/internal/config"

	_ "modernc.org/sqlite"
)

// @title Wyoming District Alerts API
// @version 1.0
// @description API for resolving Wyoming legislative districts and subscribing to vote alerts
// @host localhost:8080
// @BasePath /api/
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panic(err)
	}

	logger := log.New(log.Writer(), "DistrictAlertsAPI: ", log.LstdFlags)

	application := app.New(*cfg, logger)
	container := application.Init()

	if err := application.Start(container); err != nil {
		log.Panic(err)
	}
}
