package main

import (
	"log"

	"github.com/mrmoe28/solarscheduler/internal/auth"
	"github.com/mrmoe28/solarscheduler/internal/config"
	"github.com/mrmoe28/solarscheduler/internal/db"
	"github.com/mrmoe28/solarscheduler/internal/logging"
	"github.com/mrmoe28/solarscheduler/internal/service"
	"github.com/mrmoe28/solarscheduler/internal/store"
	"github.com/mrmoe28/solarscheduler/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	customerStore := store.NewCustomerStore(database)
	vendorStore := store.NewVendorStore(database)
	jobStore := store.NewJobStore(database)
	userStore := store.NewUserStore(database)
	sessionStore := store.NewSessionStore(database)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)

	customerService := service.NewCustomerService(customerStore, logger)
	vendorService := service.NewVendorService(vendorStore, logger)
	jobService := service.NewJobService(jobStore, customerStore, logger)
	accountService := service.NewAccountService(userStore, sessionStore, jobStore, tokens, logger)

	server := web.NewServer(customerService, vendorService, jobService, accountService, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
