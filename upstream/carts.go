package upstream

import (
	"context"
	"net/http"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// FetchCarts returns the backend's authoritative cart list for the token's
// user, still in wire shape. The sync orchestrator filters and transforms.
func (c *Client) FetchCarts(ctx context.Context, token string) ([]models.ServerCart, error) {
	var carts []models.ServerCart
	if err := c.do(ctx, "fetch carts", http.MethodGet, "/carts", nil, token, nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}
