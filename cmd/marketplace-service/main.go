package main

import (
	"flag"
	"os"

	"github.com/VehicleShare/VehicleShare/internal/booking"
	"github.com/VehicleShare/VehicleShare/internal/common/config"
	"github.com/VehicleShare/VehicleShare/internal/common/db"
	"github.com/VehicleShare/VehicleShare/internal/common/logger"
	"github.com/VehicleShare/VehicleShare/internal/common/middleware"
	"github.com/VehicleShare/VehicleShare/internal/common/server"
	"github.com/VehicleShare/VehicleShare/internal/common/tracing"
	"github.com/VehicleShare/VehicleShare/internal/favorite"
	"github.com/VehicleShare/VehicleShare/internal/purchase"
	"github.com/VehicleShare/VehicleShare/internal/review"
	"github.com/VehicleShare/VehicleShare/internal/user"
	"github.com/VehicleShare/VehicleShare/internal/vehicle"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "configs/marketplace-service.json", "path to config file")
	flag.Parse()

	// .env is a development convenience; absence is fine
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		logrus.Fatalf("failed to init logger: %v", err)
	}

	_, closer, err := tracing.InitTracer(cfg.Server.Name, cfg.Jaeger.Endpoint, cfg.Jaeger.Sampler)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}

	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&user.User{},
		&user.Profile{},
		&vehicle.Vehicle{},
		&booking.Booking{},
		&purchase.PurchaseRequest{},
		&review.Review{},
		&favorite.Favorite{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	userRepo := user.NewRepo(gormDB)
	vehicleRepo := vehicle.NewRepo(gormDB)
	bookingRepo := booking.NewRepo(gormDB)
	purchaseRepo := purchase.NewRepo(gormDB)
	reviewRepo := review.NewRepo(gormDB)
	favoriteRepo := favorite.NewRepo(gormDB)

	userHandler := user.NewHTTPHandler(user.NewService(userRepo, cfg.Auth), log)
	vehicleHandler := vehicle.NewHTTPHandler(vehicle.NewService(vehicleRepo), log)
	bookingHandler := booking.NewHTTPHandler(booking.NewService(bookingRepo, vehicleRepo), log)
	purchaseHandler := purchase.NewHTTPHandler(purchase.NewService(purchaseRepo, vehicleRepo), log)
	reviewHandler := review.NewHTTPHandler(review.NewService(reviewRepo, vehicleRepo), log)
	favoriteHandler := favorite.NewHTTPHandler(favorite.NewService(favoriteRepo, vehicleRepo), log)

	router := newRouter(cfg, log, userHandler, vehicleHandler, bookingHandler, purchaseHandler, reviewHandler, favoriteHandler)

	if err := server.RunHTTPServer(cfg, log, router); err != nil {
		log.Errorf("server exited with error: %v", err)
		os.Exit(1)
	}
}

func newRouter(
	cfg *config.Config,
	log logger.Logger,
	userHandler *user.HTTPHandler,
	vehicleHandler *vehicle.HTTPHandler,
	bookingHandler *booking.HTTPHandler,
	purchaseHandler *purchase.HTTPHandler,
	reviewHandler *review.HTTPHandler,
	favoriteHandler *favorite.HTTPHandler,
) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		server.RecoveryMiddleware(log),
		server.AccessLogMiddleware(log),
		server.TracingMiddleware(cfg.Server.Name),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// public routes still parse a token when present, so owners see their own
	// unpublished listings
	public := api.Group("")
	public.Use(server.OptionalAuthMiddleware(cfg.Auth))
	userHandler.RegisterPublicRoutes(public)
	vehicleHandler.RegisterPublicRoutes(public)
	reviewHandler.RegisterPublicRoutes(public)

	authed := api.Group("")
	authed.Use(
		server.AuthMiddleware(cfg.Auth),
		server.RateLimitMiddleware(middleware.NewTokenBucket(100, 50)),
	)
	userHandler.RegisterAuthedRoutes(authed)
	vehicleHandler.RegisterAuthedRoutes(authed)
	bookingHandler.RegisterAuthedRoutes(authed)
	purchaseHandler.RegisterAuthedRoutes(authed)
	reviewHandler.RegisterAuthedRoutes(authed)
	favoriteHandler.RegisterAuthedRoutes(authed)

	return router
}
