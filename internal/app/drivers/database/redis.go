package database

import (
	"context"
	"fmt"
	"time"

	"clinic-dashboard-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient connects to the store that holds sessions and toasts.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	address := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: driverConfig.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		log.Fatal("Could not connect to Redis", zap.String("address", address), zap.Error(err))
	}

	log.Info("Successfully connected to redis", zap.String("address", address))
	return rdb
}
