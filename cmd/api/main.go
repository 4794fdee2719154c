package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/sawari/sawari-admin-api/internal/config"
	"github.com/sawari/sawari-admin-api/internal/domain/admin"
	"github.com/sawari/sawari-admin-api/internal/domain/driver"
	"github.com/sawari/sawari-admin-api/internal/domain/earning"
	"github.com/sawari/sawari-admin-api/internal/domain/notification"
	"github.com/sawari/sawari-admin-api/internal/domain/rental"
	"github.com/sawari/sawari-admin-api/internal/domain/ride"
	"github.com/sawari/sawari-admin-api/internal/domain/settings"
	"github.com/sawari/sawari-admin-api/internal/domain/vehicle"
	"github.com/sawari/sawari-admin-api/internal/middleware"
	"github.com/sawari/sawari-admin-api/internal/pkg/database"
	"github.com/sawari/sawari-admin-api/internal/pkg/logger"
	pkgresponse "github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Env,
	})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Sawari admin API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	store, err := storage.New(storage.Config{
		Endpoint:  cfg.StorageEndpoint,
		Region:    cfg.StorageRegion,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Bucket:    cfg.StorageBucket,
		PublicURL: cfg.StoragePublicURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create object storage client")
	}

	// ---------- Repositories ----------
	adminDir := admin.NewDirectory(db)
	vehicleRepo := vehicle.NewRepository(db)
	driverRepo := driver.NewRepository(db)
	rideRepo := ride.NewRepository(db)
	rentalRepo := rental.NewRepository(db)
	earningRepo := earning.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	settingsRepo := settings.NewRepository(db)

	// ---------- Notification hub ----------
	hub := notification.NewHub(redis)
	go hub.Run()
	defer hub.Shutdown()

	// ---------- Services ----------
	adminService := admin.NewService(adminDir)
	tokens := admin.NewTokenService(cfg.JWTSecret, cfg.JWTSessionTTL)

	// ---------- Handlers ----------
	adminHandler := admin.NewHandler(adminService, tokens)
	vehicleHandler := vehicle.NewHandler(vehicleRepo, store)
	driverHandler := driver.NewHandler(driverRepo, store)
	rideHandler := ride.NewHandler(rideRepo, driverRepo)
	rentalHandler := rental.NewHandler(rentalRepo)
	earningHandler := earning.NewHandler(earningRepo, redis, cfg.StatsCacheTTL)
	notificationHandler := notification.NewHandler(notificationRepo, hub, cfg.AllowedOrigins)
	settingsHandler := settings.NewHandler(settingsRepo)

	auth := admin.AuthMiddleware(tokens, adminService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Notification stream (before Compress, WebSocket upgrades cannot be
	// compressed). The dashboard passes the session token as a query param.
	r.Get("/api/v1/notifications/ws", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
		auth(http.HandlerFunc(notificationHandler.WebSocket)).ServeHTTP(w, r)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.Compress(5))

		r.Mount("/", adminHandler.Routes())

		r.Mount("/vehicles", vehicleHandler.Routes(auth, admin.RequireFeature(admin.FeatureVehicles)))
		r.Mount("/rental-packages", rentalHandler.Routes(auth, admin.RequireFeature(admin.FeatureVehicles)))
		r.Mount("/drivers", driverHandler.Routes(auth, admin.RequireFeature(admin.FeatureDrivers)))
		r.Mount("/rides", rideHandler.Routes(auth, admin.RequireFeature(admin.FeatureRides)))
		r.Mount("/earnings", earningHandler.Routes(auth, admin.RequireFeature(admin.FeatureEarnings)))
		r.Mount("/notifications", notificationHandler.Routes(auth, admin.RequireFeature(admin.FeatureNotifications)))
		r.Mount("/settings", settingsHandler.Routes(auth, admin.RequireFeature(admin.FeatureAdminManagement)))

		// Dashboard cards reuse the earnings aggregates under the dashboard gate
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(auth)
			r.Use(admin.RequireFeature(admin.FeatureDashboard))
			r.Get("/stats", earningHandler.GetStats)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
