package cache

import (
	"academy/config"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	courseListKey = "courses:list"
	courseListTTL = 5 * time.Minute
)

// ErrCacheMiss is returned when a key is absent or caching is disabled.
var ErrCacheMiss = errors.New("cache miss")

// Client is the shared Redis client. It stays nil when REDIS_ADDR is not
// configured, in which case every operation degrades to a no-op miss.
var Client *redis.Client

// Connect initializes the Redis client from config. Caching is optional;
// a missing address just disables it.
func Connect() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, course list caching disabled.")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
	})

	if err := Client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis ping failed, course list caching disabled: %v", err)
		Client = nil
	}
}

// GetCourseList unmarshals the cached course list into dest.
func GetCourseList(ctx context.Context, dest interface{}) error {
	if Client == nil {
		return ErrCacheMiss
	}

	data, err := Client.Get(ctx, courseListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// SetCourseList stores the course list with the standard TTL.
func SetCourseList(ctx context.Context, value interface{}) error {
	if Client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return Client.Set(ctx, courseListKey, data, courseListTTL).Err()
}

// InvalidateCourseList drops the cached list so the next read is fresh.
// Called after every admin course mutation.
func InvalidateCourseList(ctx context.Context) {
	if Client == nil {
		return
	}

	if err := Client.Del(ctx, courseListKey).Err(); err != nil {
		log.Printf("Error invalidating course list cache: %v", err)
	}
}
