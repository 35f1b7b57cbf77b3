package database

import (
	"context"
	"fmt"
	"time"

	"clinic-dashboard-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}

	log.Info("Successfully connected to mongo database", zap.String("host", driverConfig.MongoDB.Host))
	return client
}
