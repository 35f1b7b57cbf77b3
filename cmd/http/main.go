package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-dashboard-service/internal/app/config"
	"clinic-dashboard-service/internal/app/contracts"
	"clinic-dashboard-service/internal/app/delivery/http/controllers"
	"clinic-dashboard-service/internal/app/delivery/http/middlewares"
	"clinic-dashboard-service/internal/app/delivery/http/routers"
	"clinic-dashboard-service/internal/app/drivers/database"
	identityDriver "clinic-dashboard-service/internal/app/drivers/identity"
	"clinic-dashboard-service/internal/app/drivers/logger"
	"clinic-dashboard-service/internal/app/drivers/messaging"
	"clinic-dashboard-service/internal/app/services/backend/patients"
	"clinic-dashboard-service/internal/app/services/backend/staff"
	"clinic-dashboard-service/internal/app/services/core/analytics"
	"clinic-dashboard-service/internal/app/services/core/auth"
	"clinic-dashboard-service/internal/app/services/core/clinics"
	"clinic-dashboard-service/internal/app/services/core/registry"
	"clinic-dashboard-service/internal/app/services/core/session"
	staffCore "clinic-dashboard-service/internal/app/services/core/staff"
	"clinic-dashboard-service/internal/app/services/identity"
	"clinic-dashboard-service/internal/app/services/shared/events"
	"clinic-dashboard-service/internal/app/services/shared/notifier"
	"clinic-dashboard-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, log)
	identityDriver.NewSupertokens(driverConfig, internalConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	workspaceSweeper, err := bootstrapingTheApp(bootstrap, location)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server started", zap.String("address", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	workspaceSweeper.Stop()

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) (*staffCore.WorkspaceSweeper, error) {
	internalConfig := bootstrap.InternalConfig

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Shared
	toastNotifier := notifier.NewNotifier(
		bootstrap.Logger,
		redisRepository,
		time.Duration(internalConfig.Notification.DisplayDurationInMillisecond)*time.Millisecond,
	)
	eventPublisher, err := events.NewStaffEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, internalConfig.RabbitMQ.StaffEventsQueue)
	if err != nil {
		return nil, err
	}

	// Identity provider
	identityClient := identity.NewIdentityClient(bootstrap.Logger, identity.Options{
		TenantID:             internalConfig.Identity.TenantID,
		MaxRequestsPerSecond: internalConfig.Identity.MaxRequestsPerSecond,
	})

	// REST backend
	backendHTTPClient := &http.Client{
		Timeout: time.Duration(internalConfig.Backend.RequestTimeoutInSecond) * time.Second,
	}
	descriptors := make([]registry.Descriptor, 0, len(contracts.AllRoles()))
	for _, role := range contracts.AllRoles() {
		descriptors = append(descriptors, registry.Descriptor{
			Role:               role,
			ResourcePath:       role.ResourcePath(),
			RequiresCredential: true,
			Operations:         staff.NewStaffBackendClient(internalConfig.Backend.BaseUrl, role.ResourcePath(), backendHTTPClient),
		})
	}
	entityRegistry := registry.MustNewRegistry(descriptors...)
	patientBackendClient := patients.NewPatientBackendClient(internalConfig.Backend.BaseUrl, backendHTTPClient)

	// Clinic
	clinicMongoRepository := clinics.NewClinicMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	clinicUsecase := clinics.NewClinicUsecase(bootstrap.Logger, clinicMongoRepository)
	clinicController := controllers.NewClinicController(bootstrap.Logger, clinicUsecase)

	// Staff
	staffUsecase := staffCore.NewStaffUsecase(bootstrap.Logger, entityRegistry, identityClient, toastNotifier, eventPublisher)
	staffController := controllers.NewStaffController(bootstrap.Logger, staffUsecase)
	workspaceSweeper := staffCore.NewWorkspaceSweeper(bootstrap.Logger, internalConfig, staffUsecase)
	workspaceSweeper.Start(context.Background())

	// Auth
	sessionService := session.NewSessionService(redisRepository)
	authUsecase := auth.NewAuthUsecase(bootstrap.Logger, identityClient, sessionService, staffUsecase, internalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Analytics
	analyticsUsecase := analytics.NewAnalyticsUsecase(bootstrap.Logger, patientBackendClient, clinicMongoRepository, entityRegistry, location)
	analyticsController := controllers.NewAnalyticsController(bootstrap.Logger, analyticsUsecase)

	// Notifications
	notificationController := controllers.NewNotificationController(bootstrap.Logger, toastNotifier)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, clinicUsecase, internalConfig)
	authRateLimiter := middlewares.NewRateLimiter(
		bootstrap.Logger,
		internalConfig.App.AuthMaxRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.AuthBlockTimeInMinutes)*time.Minute,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewareInstance,
		authRateLimiter,
		authController,
		clinicController,
		staffController,
		analyticsController,
		notificationController,
	)
	return workspaceSweeper, nil
}
