package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// Redis persists cart snapshots as JSON values under user_cart:<userID>.
// This is the default bridge; it shares the client the rate limiter uses.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) SaveCart(ctx context.Context, userID string, carts []models.Cart) error {
	b, err := json.Marshal(Sanitize(carts))
	if err != nil {
		return fmt.Errorf("marshal cart snapshot: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(userID), b, 0).Err(); err != nil {
		return fmt.Errorf("save cart snapshot: %w", err)
	}
	return nil
}

func (r *Redis) LoadCart(ctx context.Context, userID string) ([]models.Cart, error) {
	b, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if err == redis.Nil {
		return []models.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}

	var carts []models.Cart
	if err := json.Unmarshal(b, &carts); err != nil {
		// Stale schema from an older version; start the user clean.
		log.Printf("⚠️ undecodable cart snapshot for %s, discarding: %v", userID, err)
		return []models.Cart{}, nil
	}
	return Sanitize(carts), nil
}
