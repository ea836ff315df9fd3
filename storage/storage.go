package storage

import (
	"context"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// CartKeyPrefix is the persisted-state key the mobile client historically
// used; the gateway namespaces it per user.
const CartKeyPrefix = "user_cart"

// Storage is the persistence bridge for cart snapshots. Saves are non-fatal
// by contract (callers log and move on); loads return an empty list instead
// of failing on missing or undecodable data.
type Storage interface {
	SaveCart(ctx context.Context, userID string, carts []models.Cart) error
	LoadCart(ctx context.Context, userID string) ([]models.Cart, error)
}

func cartKey(userID string) string {
	return CartKeyPrefix + ":" + userID
}
