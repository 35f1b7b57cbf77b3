package config

import (
	"clinic-dashboard-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinic_dashboard"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Supertoken: Supertoken{
			ConnectionURI:   utils.GetEnvString("SUPERTOKEN_CONNECTION_URI", "http://localhost:3567"),
			APIKey:          utils.GetEnvString("SUPERTOKEN_API_KEY", ""),
			AppName:         utils.GetEnvString("SUPERTOKEN_APP_NAME", "Clinic Dashboard"),
			ApiDomain:       utils.GetEnvString("SUPERTOKEN_API_DOMAIN", "http://localhost:8080"),
			WebsiteDomain:   utils.GetEnvString("SUPERTOKEN_WEBSITE_DOMAIN", "http://localhost:3000"),
			ApiBasePath:     utils.GetEnvString("SUPERTOKEN_API_BASE_PATH", "/auth"),
			WebsiteBasePath: utils.GetEnvString("SUPERTOKEN_WEBSITE_BASE_PATH", "/auth"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AuthMaxRequestsPerMinute:   utils.GetEnvInt("APP_AUTH_MAX_REQUESTS_PER_MINUTE", 10),
			AuthBlockTimeInMinutes:     utils.GetEnvInt("APP_AUTH_BLOCK_TIME_IN_MINUTES", 5),
			SuperadminEmails:           utils.GetEnvStringSlice("APP_SUPERADMIN_EMAILS", nil),
			SessionExpiredTimeInHours:  utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 8),
			WorkspaceSweepCronSpec:     utils.GetEnvString("APP_WORKSPACE_SWEEP_CRON_SPEC", "@every 5m"),
		},
		Backend: Backend{
			BaseUrl:                utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:5000"),
			RequestTimeoutInSecond: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECOND", 0),
		},
		Identity: Identity{
			TenantID:             utils.GetEnvString("IDENTITY_TENANT_ID", "public"),
			MaxRequestsPerSecond: utils.GetEnvInt("IDENTITY_MAX_REQUESTS_PER_SECOND", 5),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Notification: Notification{
			DisplayDurationInMillisecond: utils.GetEnvInt("NOTIFICATION_DISPLAY_DURATION_IN_MILLISECOND", 3500),
		},
		RabbitMQ: AppRabbitMQ{
			StaffEventsQueue: utils.GetEnvString("APP_RABBITMQ_STAFF_EVENTS_QUEUE", "staff-events"),
		},
	}
}
