package kv

import (
	"context"
	"log/slog"
	"os"

	"ioi_scoring/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// RDB backs both the problem scoring config store and the rescore job queue.
var RDB *redis.Client

func ConnectRedis() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		slog.Error("connecting to Redis", "err", err)
		os.Exit(1)
	}
	slog.Info("connected to Redis")
}

func CloseRedis() {
	if RDB != nil {
		RDB.Close()
		slog.Info("redis connection closed")
	}
}
