//go:build integration
// +build integration

package integration

import (
	"database/sql"
	"fmt"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/wyovotewatch/district-alerts-api/internal/app"
	"github.com/wyovotewatch/district-alerts-api/internal/config"
	handlerAdmin "github.com/wyovotewatch/district-alerts-api/internal/handlers/admin"
	handlerDistricts "github.com/wyovotewatch/district-alerts-api/internal/handlers/districts"
	"github.com/wyovotewatch/district-alerts-api/internal/handlers/subscription"

	_ "modernc.org/sqlite"
)

var (
	testServerURL string
	db            *sql.DB
)

func TestMain(m *testing.M) {
	fmt.Println("Starting integration tests...")

	tmpDir, err := os.MkdirTemp("", "district-alerts-integration")
	if err != nil {
		log.Panicf("failed to create temp dir: %v", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Println("failed to remove temp dir:", err)
		}
	}()

	os.Setenv("DB_NAME", tmpDir+"/alerts_test.db")
	os.Setenv("DB_MIGRATIONS_DIR", "../../migrations")
	os.Setenv("TEMPLATES_DIR", "../../templates")
	os.Setenv("LOGS_PATH", tmpDir+"/outbound_test.log")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load config: %v", err)
	}

	application := app.New(*cfg, log.Default())
	srvContainer := application.Init()

	if srvContainer.Db == nil {
		log.Panic("Database is not initialized")
	}
	if err := srvContainer.Db.Ping(); err != nil {
		log.Panicf("failed to connect to the database: %v", err)
	}

	districtHandler := handlerDistricts.NewHandler(srvContainer.DistrictService, srvContainer.Metrics)
	subHandler := subscription.NewHandler(srvContainer.SubscriptionService, srvContainer.Metrics)
	adminHandler := handlerAdmin.NewHandler(srvContainer.LegislatorRepo, srvContainer.Metrics)

	api := srvContainer.Router.Group("/api")
	{
		api.POST("/districts/lookup", districtHandler.Lookup)
		api.POST("/subscribe", subHandler.Subscribe)
		api.POST("/admin/legislators/import", adminHandler.ImportLegislators)
		api.GET("/legislators", adminHandler.ListLegislators)
	}

	testServer := httptest.NewServer(srvContainer.Router)
	defer func() {
		testServer.Close()
		if err := srvContainer.Db.Close(); err != nil {
			log.Println("failed to close database:", err)
		}
	}()

	testServerURL = testServer.URL
	db = srvContainer.Db

	_ = m.Run()
}

func resetTables() error {
	for _, table := range []string{
		"outbound_dedup", "member_votes", "votes",
		"notification_preferences", "subscriber_districts", "subscribers",
	} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to reset %s table: %w", table, err)
		}
	}
	return nil
}
