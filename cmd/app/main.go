package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"treats/cmd"
	httpadapter "treats/internal/adapters/in/http"
	"treats/internal/adapters/out/postgres/catalogrepo"
	"treats/internal/adapters/out/postgres/customerrepo"
	"treats/internal/adapters/out/postgres/draftrepo"
	"treats/internal/adapters/out/postgres/orderrepo"
	"treats/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultDraftRetentionDays = 30

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreatePurgeAbandonedDraftsCommandHandler(),
		configs.DraftRetention,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		DraftRetention: draftRetention(goDotEnvVariable("DRAFT_RETENTION_DAYS")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func draftRetention(days string) time.Duration {
	n, err := strconv.Atoi(days)
	if err != nil || n <= 0 {
		n = defaultDraftRetentionDays
	}
	return time.Duration(n) * 24 * time.Hour
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&draftrepo.DraftDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&catalogrepo.PackageOptionDTO{},
		&catalogrepo.TreatOptionDTO{},
		&catalogrepo.DesignOptionDTO{},
		&catalogrepo.TimeSlotDTO{},
		&catalogrepo.UnavailablePeriodDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateDraftCommandHandler(),
		app.CreateUpdateDraftCommandHandler(),
		app.CreateSubmitDraftCommandHandler(),
		app.CreateDeleteDraftCommandHandler(),
		app.CreateListDraftsQueryHandler(),
		app.CreateGetDraftQueryHandler(),
		app.CreateGetDraftQuoteQueryHandler(),
		app.CreateGetCatalogQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
