package storage

import "github.com/martpe-org/martpeApp-sub003/models"

// Sanitize filters a persisted cart list back into shape: items without an
// id are dropped, carts without a store reference are dropped, and carts
// left empty after item filtering are dropped. Persisted data can be stale
// across app versions, so this runs on every load and before every save.
// Idempotent.
func Sanitize(carts []models.Cart) []models.Cart {
	out := make([]models.Cart, 0, len(carts))
	for _, c := range carts {
		if c.Store.ID == "" {
			continue
		}
		items := make([]models.CartItem, 0, len(c.Items))
		for _, it := range c.Items {
			if it.ID == "" {
				continue
			}
			items = append(items, it)
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, models.Cart{Store: c.Store, Items: items})
	}
	return out
}
