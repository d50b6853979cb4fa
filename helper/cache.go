package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"lalibela_manager/config"
	"lalibela_manager/database"
	"lalibela_manager/model"
)

var redisClient *redis.Client

const reservationCacheTTL = 30 * time.Second

func InitRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("Redis not configured, availability reads go straight to the database")
		return
	}
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
}

func reservationCacheKey(date string) string {
	return "reservations:date:" + date
}

// ReservationsForDate returns all reservations on a date, served from the
// short-lived Redis cache when possible so availability checks do not hammer
// the database.
func ReservationsForDate(ctx context.Context, date string) ([]model.Reservation, error) {
	if redisClient != nil {
		if raw, err := redisClient.Get(ctx, reservationCacheKey(date)).Result(); err == nil {
			var cached []model.Reservation
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	var reservations []model.Reservation
	if err := database.DB.Where("date = ?", date).Find(&reservations).Error; err != nil {
		return nil, err
	}

	if redisClient != nil {
		if raw, err := json.Marshal(reservations); err == nil {
			redisClient.Set(ctx, reservationCacheKey(date), raw, reservationCacheTTL)
		}
	}

	return reservations, nil
}

// InvalidateReservationCache drops the cached set for a date after any
// reservation mutation.
func InvalidateReservationCache(ctx context.Context, date string) {
	if redisClient == nil || date == "" {
		return
	}
	redisClient.Del(ctx, reservationCacheKey(date))
}

// FlushReservationCache drops every cached date. Used by bulk sweeps where
// the touched dates are not enumerated.
func FlushReservationCache() {
	if redisClient == nil {
		return
	}
	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, reservationCacheKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		redisClient.Del(ctx, iter.Val())
	}
}
