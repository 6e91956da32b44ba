// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"guestevents/config"

	"github.com/go-redis/redis/v8"
)

// OTPCacheClient is the dedicated client for pending OTP codes.
var OTPCacheClient *redis.Client

// InitOTPCache initializes the Redis client for OTP storage (using the OTP DB from AppConfig).
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := OTPCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (OTP Cache): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}
