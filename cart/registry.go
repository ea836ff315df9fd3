package cart

import (
	"context"
	"log"
	"sync"

	"github.com/martpe-org/martpeApp-sub003/storage"
)

// Registry owns one Store per user. It is constructed at the composition
// root and passed into the handlers; nothing here is package-level state.
// On first access for a user it hydrates the store from the persistence
// bridge, so the cart renders instantly (possibly stale) before the first
// network sync lands.
type Registry struct {
	mu      sync.RWMutex
	stores  map[string]*Store
	storage storage.Storage
}

func NewRegistry(st storage.Storage) *Registry {
	return &Registry{
		stores:  make(map[string]*Store),
		storage: st,
	}
}

// Ensure returns the user's store, hydrating it from storage on first use.
func (r *Registry) Ensure(ctx context.Context, userID string) *Store {
	r.mu.RLock()
	st, ok := r.stores[userID]
	r.mu.RUnlock()
	if ok {
		return st
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok = r.stores[userID]; ok {
		return st
	}

	st = NewStore()
	carts, err := r.storage.LoadCart(ctx, userID)
	if err != nil {
		// Hydration failure is non-fatal: start empty, sync will catch up.
		log.Printf("⚠️ cart hydration failed for %s: %v", userID, err)
		carts = nil
	}
	count := 0
	for _, c := range carts {
		count += c.ItemQty()
	}
	st.InitUserCart(carts, count)
	r.stores[userID] = st
	return st
}

// Drop forgets a user's store, used after logout reset.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	delete(r.stores, userID)
	r.mu.Unlock()
}
