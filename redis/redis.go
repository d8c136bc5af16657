package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// SetVerificationToken stores an email-verification token with a TTL so
// expired links die on their own; the EmailVerification row in Postgres
// remains behind as the audit record.
func SetVerificationToken(token string, reviewID uint, ttl time.Duration) error {
	return Client.Set(Ctx, "verify:"+token, uint64(reviewID), ttl).Err()
}

// ConsumeVerificationToken fetches and deletes a token in one round trip so
// a link can only be used once.
func ConsumeVerificationToken(token string) (uint, error) {
	val, err := Client.GetDel(Ctx, "verify:"+token).Uint64()
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}
