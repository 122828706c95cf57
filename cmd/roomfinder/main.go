package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpapi "github.com/opencampus/roomfinder/internal/api/http"
	"github.com/opencampus/roomfinder/internal/config"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/repository/model"
	"github.com/opencampus/roomfinder/internal/service"
	"github.com/opencampus/roomfinder/lib/logger/slogpretty"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.MustLoad()
	log := setupLogger(cfg.Env)

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		log.Error("failed to connect database", slog.Any("error", err))
		os.Exit(1)
	}

	roomRepo := repository.NewPostgresRoomRepository(db)
	slotRepo := repository.NewPostgresSlotRepository(db)
	dumpRepo := repository.NewPostgresDumpRepository(db)
	availabilityRepo := repository.NewPostgresAvailabilityRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	indexService := service.NewIndexService(roomRepo, slotRepo, availabilityRepo, log)
	importService := service.NewImportService(roomRepo, slotRepo, dumpRepo, indexService, log)
	availabilityService := service.NewAvailabilityService(availabilityRepo, bookingRepo, log)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, availabilityRepo, log)
	catalogService := service.NewCatalogService(roomRepo, log)

	availabilityController := httpapi.NewAvailabilityController(availabilityService)
	bookingController := httpapi.NewBookingController(bookingService)
	catalogController := httpapi.NewCatalogController(catalogService)
	importController := httpapi.NewImportController(importService, indexService)

	router := httpapi.SetupRouter(availabilityController, bookingController, catalogController, importController)

	log.Info("starting application", slog.String("addr", cfg.HTTP.Address))
	if err := router.Run(cfg.HTTP.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = setupPrettySlog()
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}

func connectDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn is empty")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Room{},
		&model.RecurringSlot{},
		&model.AvailabilityEntry{},
		&model.Booking{},
		&model.ScheduleDump{},
	); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeMins) * time.Minute)

	return db, nil
}
