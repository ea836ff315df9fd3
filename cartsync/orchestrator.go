package cartsync

import (
	"context"
	"log"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// Orchestrator reconciles a user's local cart store with the backend's
// authoritative cart list.
type Orchestrator struct {
	client  *upstream.Client
	storage storage.Storage
}

func New(client *upstream.Client, st storage.Storage) *Orchestrator {
	return &Orchestrator{client: client, storage: st}
}

// Sync fetches the server carts and applies them to the store. It returns
// whether the store was overwritten.
//
// Rules, in order:
//   - no token: sync is disabled, not an error;
//   - fetch or decode failure: local state untouched, error returned;
//   - server snapshot fingerprints equal to the last applied one: store left
//     untouched, even if deep content differs;
//   - carts locally mutated while the fetch was in flight keep their local
//     version (revision guard), everything else takes the server's version.
//
// On apply, the resulting snapshot is written through the persistence
// bridge; a save failure is logged, never surfaced.
func (o *Orchestrator) Sync(ctx context.Context, st *cart.Store, userID, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	guard := st.RevisionSnapshot()

	serverCarts, err := o.client.FetchCarts(ctx, token)
	if err != nil {
		return false, err
	}

	local := make([]models.Cart, 0, len(serverCarts))
	for _, sc := range serverCarts {
		if !sc.HasItems() {
			continue
		}
		lc := sc.ToLocalCart()
		// A cart reporting only a count has no lines to render; it is
		// dropped like any other empty cart at this boundary.
		if len(lc.Items) == 0 {
			continue
		}
		local = append(local, lc)
	}

	if cart.FingerprintOf(local) == st.LastAppliedFingerprint() {
		return false, nil
	}

	st.ApplyServerSnapshot(local, guard)

	if err := o.storage.SaveCart(ctx, userID, st.SnapshotForSave()); err != nil {
		log.Printf("⚠️ cart snapshot save failed for %s: %v", userID, err)
	}
	return true, nil
}
