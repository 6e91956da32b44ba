// Command devserver runs a local catalog and OTP backend that speaks the
// same API as the hosted guest event service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guestevents/config"
	"guestevents/database"
	eventRepo "guestevents/database/repository/event"
	"guestevents/handlers"
	"guestevents/middleware"
	"guestevents/routes"
	"guestevents/services/catalog"
	"guestevents/services/otp"
	"guestevents/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	flag "github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "path to a config file")
	port := flag.String("port", "", "listen port (overrides APP_PORT)")
	storage := flag.String("storage", "", "event and OTP storage: mongo or memory (overrides STORAGE)")
	flag.Parse()

	config.LoadConfig(*configFile)
	if flag.CommandLine.Changed("port") {
		config.AppConfig.AppPort = *port
	}
	if flag.CommandLine.Changed("storage") {
		config.AppConfig.Storage = *storage
	}
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		events      eventRepo.EventRepository
		otpStore    otp.OTPStore
		mongoClient *mongo.Client
		redisClient *redis.Client
	)
	switch config.AppConfig.Storage {
	case "memory":
		events = eventRepo.NewMemoryEventRepo()
		otpStore = otp.NewMemoryOTPStore()
	case "mongo":
		if err := database.InitDB(); err != nil {
			logger.Fatal("main: database unavailable", zap.Error(err))
		}
		mongoClient = database.MongoClient
		repo, err := eventRepo.NewMongoEventRepo(database.Database())
		if err != nil {
			logger.Fatal("main: failed to prepare events collection", zap.Error(err))
		}
		events = repo
		redisClient = utils.GetOTPCacheClient()
		otpStore = otp.NewRedisOTPStore(redisClient)
	default:
		logger.Fatal("main: unknown storage backend", zap.String("storage", config.AppConfig.Storage))
	}

	seeded, err := eventRepo.Seed(ctx, events, time.Now())
	if err != nil {
		logger.Fatal("main: failed to seed events", zap.Error(err))
	}
	if seeded > 0 {
		logger.Info("Seeded sample events", zap.Int("count", seeded))
	}
	utils.StartHealthMonitor(ctx, utils.HealthCheckInterval, redisClient, mongoClient)

	// services.
	otpService := &otp.DefaultOTPService{
		Store:       otpStore,
		Length:      config.AppConfig.OTPLength,
		TTL:         config.AppConfig.OTPTTL,
		MaxAttempts: config.AppConfig.OTPMaxAttempts,
		TokenTTL:    24 * time.Hour,
	}
	catalogService := &catalog.DefaultCatalogService{Repo: events}

	otpHandler := handlers.NewOTPHandler(otpService)
	eventHandler := handlers.NewEventHandler(catalogService)
	handlerBundle := &handlers.HandlerBundle{
		SendOTPHandler:        otpHandler.SendOTPHandler,
		VerifyOTPHandler:      otpHandler.VerifyOTPHandler,
		UpcomingEventsHandler: eventHandler.UpcomingEventsHandler,
		EventDetailHandler:    eventHandler.EventDetailHandler,
		HealthHandler:         handlers.HealthHandler,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + config.AppConfig.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (%s storage)...", srv.Addr, config.AppConfig.Storage)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(shutdownCtx)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
