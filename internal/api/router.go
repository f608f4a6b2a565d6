package api

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aurora-hotel/inventory-system/internal/api/handler"
	"github.com/aurora-hotel/inventory-system/internal/api/middleware"
	"github.com/aurora-hotel/inventory-system/internal/core/domain"
	"github.com/aurora-hotel/inventory-system/internal/core/service"
	"github.com/aurora-hotel/inventory-system/internal/infrastructure/config"
	mongodb "github.com/aurora-hotel/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/aurora-hotel/inventory-system/internal/infrastructure/db/redis"
	"github.com/aurora-hotel/inventory-system/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and starts
// the stay-event workers. Workers stop when ctx is cancelled.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Repositories ---
	accountRepo := mongodb.NewAccountRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	guestRepo := mongodb.NewGuestRepository(db)
	cleaningRepo := mongodb.NewCleaningRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	eventRepo := mongodb.NewEventRepository(db)

	locker := redisdb.NewRoomLocker(rdb, cfg.BookingLockTTL)
	dedup := redisdb.NewStayDedup(rdb)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.Auth.TokenTTL, log).
		WithPolicy(cfg.Auth.MaxFailedAttempts, cfg.Auth.InactivityDays)
	roomService := service.NewRoomService(roomRepo, log)
	bookingService := service.NewBookingService(bookingRepo, roomRepo, guestRepo, paymentRepo, locker, log)
	cleaningService := service.NewCleaningService(cleaningRepo, roomRepo, accountRepo, log)
	reportService := service.NewReportService(roomRepo, bookingRepo, paymentRepo, log)
	eventService := service.NewEventService(roomRepo, bookingRepo, cleaningRepo, eventRepo, dedup, log)

	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)
	dispatcher.Start(ctx)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	staffHandler := handler.NewStaffHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(bookingService)
	cleaningHandler := handler.NewCleaningHandler(cleaningService)
	reportHandler := handler.NewReportHandler(reportService)
	eventHandler := handler.NewEventHandler(dispatcher)

	auth := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRoles(domain.RoleAdministrator)
	frontDesk := middleware.RequireRoles(domain.RoleAdministrator, domain.RoleManager)
	anyStaff := middleware.RequireRoles(domain.RoleAdministrator, domain.RoleManager, domain.RoleHousekeeper)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/password", authHandler.ChangePassword, auth)

	// --- Staff administration ---
	v1 := e.Group("/v1", auth)
	v1.POST("/staff", staffHandler.Register, adminOnly)
	v1.POST("/staff/:login/unblock", staffHandler.Unblock, adminOnly)

	// --- Rooms ---
	v1.GET("/rooms", roomHandler.List, anyStaff)
	v1.POST("/rooms/import", roomHandler.Import, adminOnly)

	// --- Bookings & payments ---
	v1.POST("/bookings", bookingHandler.Create, frontDesk)
	v1.POST("/bookings/:id/check-in", bookingHandler.CheckIn, frontDesk)
	v1.POST("/bookings/:id/check-out", bookingHandler.CheckOut, frontDesk)
	v1.POST("/bookings/:id/cancel", bookingHandler.Cancel, frontDesk)
	v1.POST("/payments", paymentHandler.Record, frontDesk)

	// --- Cleaning ---
	v1.POST("/cleaning", cleaningHandler.Assign, frontDesk)
	v1.POST("/cleaning/:id/complete", cleaningHandler.Complete, anyStaff)

	// --- Reports ---
	v1.GET("/reports/daily", reportHandler.Daily, frontDesk)

	// --- Stay events ---
	v1.POST("/events", eventHandler.Receive, anyStaff)
	v1.POST("/events/batch", eventHandler.ReceiveBatch, anyStaff)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
