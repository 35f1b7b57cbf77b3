package logger

import (
	"log"

	"clinic-dashboard-service/internal/app/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "clinic-dashboard"

// NewZapLogger builds the JSON logger. Production writes to the configured
// files with sampling, other environments write to the console.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		logLevel = zapcore.InfoLevel
	}

	isProduction := internalConfig.App.Env == "production"

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(logLevel),
		Development: !isProduction,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"service": serviceName,
			"env":     internalConfig.App.Env,
			"version": internalConfig.App.Version,
		},
	}

	if isProduction {
		cfg.OutputPaths = []string{driverConfig.Logger.OutputFileName}
		cfg.ErrorOutputPaths = []string{"stderr", driverConfig.Logger.OutputErrorFileName}
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	}

	zapLogger, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}
	return zapLogger.Named(serviceName)
}
