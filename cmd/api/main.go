package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurora-hotel/inventory-system/internal/api"
	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/ports"
	"github.com/aurora-hotel/inventory-system/internal/core/service"
	"github.com/aurora-hotel/inventory-system/internal/infrastructure/config"
	mongodb "github.com/aurora-hotel/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/aurora-hotel/inventory-system/internal/infrastructure/db/redis"
	"github.com/aurora-hotel/inventory-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := seedAdminAccount(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("admin account seed failed")
	}

	e := api.NewRouter(ctx, db, rdb, cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http serve failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// ensureIndexes creates the unique and query indexes every repository relies on.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	indexed := []interface{ EnsureIndexes(context.Context) error }{
		mongodb.NewAccountRepository(db),
		mongodb.NewRoomRepository(db),
		mongodb.NewBookingRepository(db),
		mongodb.NewGuestRepository(db),
		mongodb.NewCleaningRepository(db),
		mongodb.NewPaymentRepository(db),
	}
	for _, repo := range indexed {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// seedAdminAccount provisions the bootstrap administrator with the default
// password on first start. Subsequent starts find it already present.
func seedAdminAccount(ctx context.Context, db *mongo.Database, cfg *config.Config, log zerolog.Logger) error {
	authService := service.NewAuthService(mongodb.NewAccountRepository(db), cfg.JWTSecret, cfg.Auth.TokenTTL, log)

	_, err := authService.RegisterStaff(ctx, ports.RegisterStaffInput{
		FullName: "Administrator",
		Login:    "admin",
		Role:     domain.RoleAdministrator,
	})
	if errors.Is(err, domain.ErrAccountExists) {
		return nil
	}
	if err == nil {
		log.Info().Msg("bootstrap administrator account created")
	}
	return err
}
