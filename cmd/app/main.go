package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"deliveryfee/cmd"
	httpin "deliveryfee/internal/adapters/in/http"
	"deliveryfee/internal/adapters/out/postgres/orderrepo"
	"deliveryfee/internal/adapters/out/reftables"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = orderrepo.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tables, err := reftables.Load(configs.RefTablesPath)
	if err != nil {
		log.Fatalf("Failed to load reference tables: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, tables, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	batchSize := 0
	if raw := os.Getenv("FEE_REFRESH_BATCH_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid FEE_REFRESH_BATCH_SIZE %q: %v", raw, err)
		}
		batchSize = parsed
	}

	return cmd.Config{
		HTTPPort:            os.Getenv("HTTP_PORT"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              os.Getenv("DB_PORT"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           os.Getenv("DB_SSLMODE"),
		RefTablesPath:       os.Getenv("REF_TABLES_PATH"),
		FeeRefreshSchedule:  os.Getenv("FEE_REFRESH_SCHEDULE"),
		FeeRefreshBatchSize: batchSize,
		LogLevel:            os.Getenv("LOG_LEVEL"),
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func startWebServer(app cmd.CompositionRoot, port string) {
	doc, err := httpin.LoadOpenAPI()
	if err != nil {
		log.Fatalf("Failed to load API description: %v", err)
	}

	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		log.Fatalf("Failed to build request validator: %v", err)
	}

	if err = httpin.RegisterAPIDocs(doc); err != nil {
		log.Fatalf("Failed to register API description: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(app.Metrics().Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	httpin.RegisterHandlers(e, app.CreateHTTPServer(), validator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
