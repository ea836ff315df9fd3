package cart

import (
	"sync"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// Store holds every non-empty cart of one user. It is explicitly constructed
// and handed out by the Registry; there is no package-level instance. gin
// handlers run concurrently, so all access is serialized behind the mutex.
//
// Every mutation bumps the owning cart's revision. The sync orchestrator
// snapshots revisions before its fetch and refuses to overwrite a cart that
// was mutated while the fetch was in flight.
type Store struct {
	mu          sync.Mutex
	carts       []models.Cart
	offers      map[string]models.AppliedOffer
	count       int
	revs        map[string]int64
	lastApplied Fingerprint
}

func NewStore() *Store {
	return &Store{
		offers: make(map[string]models.AppliedOffer),
		revs:   make(map[string]int64),
	}
}

// InitUserCart replaces the store contents wholesale. Used on hydration.
// A nil cart list coerces to empty and a negative count to zero; stale
// persisted data is repaired here, not rejected.
func (s *Store) InitUserCart(carts []models.Cart, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if carts == nil {
		carts = []models.Cart{}
	}
	if count < 0 {
		count = 0
	}
	s.carts = copyCarts(carts)
	s.count = count
	for _, c := range s.carts {
		s.revs[c.Store.ID]++
	}
}

// AddItem adds a line to the given store's cart. When an existing line has
// the same product and the same customization selection, quantities merge
// instead of creating a duplicate row.
func (s *Store) AddItem(store models.StoreInfo, item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Qty <= 0 {
		return
	}
	item.StoreID = store.ID
	recalcItem(&item)

	ci := s.cartIndex(store.ID)
	if ci < 0 {
		s.carts = append(s.carts, models.Cart{Store: store, Items: []models.CartItem{item}})
		s.count += item.Qty
		s.revs[store.ID]++
		return
	}

	c := &s.carts[ci]
	for i := range c.Items {
		if c.Items[i].SameSelection(item) {
			c.Items[i].Qty += item.Qty
			recalcItem(&c.Items[i])
			s.count += item.Qty
			s.revs[store.ID]++
			return
		}
	}
	c.Items = append(c.Items, item)
	s.count += item.Qty
	s.revs[store.ID]++
}

// UpdateItemQty sets a line's quantity. The count delta is recomputed here
// from the old quantity, never trusted from the caller. A quantity of zero
// or less removes the line. Unknown ids are a no-op.
func (s *Store) UpdateItemQty(id string, newQty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newQty <= 0 {
		s.removeItemLocked(id)
		return
	}
	ci, ii := s.itemIndex(id)
	if ci < 0 {
		return
	}
	it := &s.carts[ci].Items[ii]
	s.count += newQty - it.Qty
	it.Qty = newQty
	recalcItem(it)
	s.revs[s.carts[ci].Store.ID]++
}

// UpdateItemCustomizations replaces a line's customization selection and its
// total price. Quantity and count are untouched. Unknown ids are a no-op.
func (s *Store) UpdateItemCustomizations(id string, customizations []models.Customization, newTotalPrice float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, ii := s.itemIndex(id)
	if ci < 0 {
		return
	}
	it := &s.carts[ci].Items[ii]
	it.Customizations = append([]models.Customization(nil), customizations...)
	it.TotalPrice = newTotalPrice
	it.TotalMaxPrice = it.UnitMaxPrice*float64(it.Qty) + it.CustomizationsTotal()
	s.revs[s.carts[ci].Store.ID]++
}

// RemoveItem drops a line and decrements the count by its quantity.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeItemLocked(id)
}

func (s *Store) removeItemLocked(id string) {
	ci, ii := s.itemIndex(id)
	if ci < 0 {
		return
	}
	c := &s.carts[ci]
	s.count -= c.Items[ii].Qty
	c.Items = append(c.Items[:ii], c.Items[ii+1:]...)
	s.revs[c.Store.ID]++
	if len(c.Items) == 0 {
		s.dropCartLocked(ci)
	}
}

// RemoveCart removes items of one store's cart through a single path: the
// doomed set is the explicit id list when given, otherwise every item of the
// store. The count always decrements by the summed quantity of what was
// actually removed; itemsCount is accepted for API compatibility but never
// trusted.
func (s *Store) RemoveCart(storeID string, itemsCount *int, cartItemIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci := s.cartIndex(storeID)
	if ci < 0 {
		return
	}
	c := &s.carts[ci]

	doomed := make(map[string]bool, len(cartItemIDs))
	for _, id := range cartItemIDs {
		doomed[id] = true
	}

	var kept []models.CartItem
	removedQty := 0
	for _, it := range c.Items {
		if len(cartItemIDs) == 0 || doomed[it.ID] {
			removedQty += it.Qty
			continue
		}
		kept = append(kept, it)
	}
	if removedQty == 0 {
		return
	}
	c.Items = kept
	s.count -= removedQty
	s.revs[storeID]++
	if len(c.Items) == 0 {
		s.dropCartLocked(ci)
	}
}

// ResetCart clears everything, offers included. Used on logout.
func (s *Store) ResetCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.carts {
		s.revs[c.Store.ID]++
	}
	s.carts = nil
	s.offers = make(map[string]models.AppliedOffer)
	s.count = 0
	s.lastApplied = ""
}

// Reorder merges a batch of items (typically a past order) into the store.
// Existing items of the incoming batch's stores are replaced, not duplicated.
func (s *Store) Reorder(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	incoming := make(map[string][]models.CartItem)
	order := []string{}
	for _, it := range items {
		if it.Qty <= 0 || it.StoreID == "" {
			continue
		}
		recalcItem(&it)
		if _, ok := incoming[it.StoreID]; !ok {
			order = append(order, it.StoreID)
		}
		incoming[it.StoreID] = append(incoming[it.StoreID], it)
	}

	for _, storeID := range order {
		batch := incoming[storeID]
		ci := s.cartIndex(storeID)
		if ci >= 0 {
			c := &s.carts[ci]
			s.count -= c.ItemQty()
			c.Items = batch
		} else {
			s.carts = append(s.carts, models.Cart{
				Store: models.StoreInfo{ID: storeID, Name: "Unknown Store"},
				Items: batch,
			})
		}
		for _, it := range batch {
			s.count += it.Qty
		}
		s.revs[storeID]++
	}
}

// ApplyOffer records the optimistic offer selection for one cart; a second
// apply for the same cart replaces the first.
func (s *Store) ApplyOffer(storeID string, offer models.AppliedOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[storeID] = offer
}

// ClearOffer removes the cart's offer entirely.
func (s *Store) ClearOffer(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.offers, storeID)
}

// OfferFor returns the cart's applied offer, if any.
func (s *Store) OfferFor(storeID string) (models.AppliedOffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.offers[storeID]
	return o, ok
}

// Carts returns a deep copy of the current non-empty carts.
func (s *Store) Carts() []models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCarts(s.carts)
}

// CartFor returns a deep copy of one store's cart.
func (s *Store) CartFor(storeID string) (models.Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ci := s.cartIndex(storeID)
	if ci < 0 {
		return models.Cart{}, false
	}
	cp := copyCarts(s.carts[ci : ci+1])
	return cp[0], true
}

// ItemCount is the running total quantity across all carts.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// StoreCount is the number of distinct non-empty carts.
func (s *Store) StoreCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Fingerprint of the current carts.
func (s *Store) Fingerprint() Fingerprint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FingerprintOf(s.carts)
}

// LastAppliedFingerprint is the fingerprint of the last server snapshot this
// store accepted.
func (s *Store) LastAppliedFingerprint() Fingerprint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastApplied
}

// RevisionSnapshot captures every cart's current revision. Stores the user
// has no cart for are simply absent (revision zero).
func (s *Store) RevisionSnapshot() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(map[string]int64, len(s.revs))
	for k, v := range s.revs {
		snap[k] = v
	}
	return snap
}

// ApplyServerSnapshot reconciles a transformed server snapshot into the
// store. guard is the revision snapshot captured when the fetch started: any
// cart mutated since then keeps its local version, so an in-flight optimistic
// mutation is never clobbered by a stale response. Server carts win
// everywhere else, including deletion of local carts the server no longer
// reports.
func (s *Store) ApplyServerSnapshot(serverCarts []models.Cart, guard map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutatedSince := func(storeID string) bool {
		return s.revs[storeID] != guard[storeID]
	}

	var next []models.Cart
	seen := make(map[string]bool, len(serverCarts))
	for _, sc := range serverCarts {
		seen[sc.Store.ID] = true
		if mutatedSince(sc.Store.ID) {
			if ci := s.cartIndex(sc.Store.ID); ci >= 0 {
				next = append(next, s.carts[ci])
			}
			continue
		}
		if len(sc.Items) > 0 {
			next = append(next, sc)
		}
	}
	for _, lc := range s.carts {
		if seen[lc.Store.ID] {
			continue
		}
		// Server dropped this cart; keep it only if it was touched locally
		// while the fetch was pending.
		if mutatedSince(lc.Store.ID) {
			next = append(next, lc)
		}
	}

	s.carts = next
	s.count = 0
	for _, c := range s.carts {
		s.count += c.ItemQty()
	}
	s.lastApplied = FingerprintOf(serverCarts)
}

// SnapshotForSave is the sanitized deep copy handed to the persistence
// bridge.
func (s *Store) SnapshotForSave() []models.Cart {
	return s.Carts()
}

func (s *Store) cartIndex(storeID string) int {
	for i := range s.carts {
		if s.carts[i].Store.ID == storeID {
			return i
		}
	}
	return -1
}

func (s *Store) itemIndex(id string) (cartIdx, itemIdx int) {
	for ci := range s.carts {
		for ii := range s.carts[ci].Items {
			if s.carts[ci].Items[ii].ID == id {
				return ci, ii
			}
		}
	}
	return -1, -1
}

func (s *Store) dropCartLocked(ci int) {
	storeID := s.carts[ci].Store.ID
	s.carts = append(s.carts[:ci], s.carts[ci+1:]...)
	delete(s.offers, storeID)
}

// recalcItem enforces the pricing invariant: totals are unit price times
// quantity, plus the summed customization deltas when present.
func recalcItem(it *models.CartItem) {
	cz := it.CustomizationsTotal()
	it.TotalPrice = it.UnitPrice*float64(it.Qty) + cz
	it.TotalMaxPrice = it.UnitMaxPrice*float64(it.Qty) + cz
}

func copyCarts(carts []models.Cart) []models.Cart {
	out := make([]models.Cart, 0, len(carts))
	for _, c := range carts {
		if len(c.Items) == 0 {
			continue
		}
		cc := models.Cart{Store: c.Store, Items: make([]models.CartItem, len(c.Items))}
		copy(cc.Items, c.Items)
		for i := range cc.Items {
			if cc.Items[i].Customizations != nil {
				cc.Items[i].Customizations = append([]models.Customization(nil), cc.Items[i].Customizations...)
			}
		}
		out = append(out, cc)
	}
	return out
}
