package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martpe-org/martpeApp-sub003/models"
)

func storeA() models.StoreInfo { return models.StoreInfo{ID: "store-a", Name: "Store A"} }
func storeB() models.StoreInfo { return models.StoreInfo{ID: "store-b", Name: "Store B"} }

func item(id, storeID, slug string, qty int, unitPrice float64) models.CartItem {
	return models.CartItem{
		ID:        id,
		StoreID:   storeID,
		Slug:      slug,
		CatalogID: "cat-" + slug,
		Qty:       qty,
		UnitPrice: unitPrice,
		Product:   models.ProductSnapshot{Name: slug, BasePrice: unitPrice, InStock: true},
	}
}

// summedQty recomputes the count from scratch for invariant checks.
func summedQty(s *Store) int {
	var n int
	for _, c := range s.Carts() {
		n += c.ItemQty()
	}
	return n
}

func TestStore_CountTracksSummedQuantity(t *testing.T) {
	s := NewStore()

	s.AddItem(storeA(), item("i1", "store-a", "dosa", 2, 50))
	s.AddItem(storeA(), item("i2", "store-a", "idli", 1, 30))
	s.AddItem(storeB(), item("i3", "store-b", "soap", 3, 20))
	assert.Equal(t, 6, s.ItemCount())
	assert.Equal(t, summedQty(s), s.ItemCount())

	s.UpdateItemQty("i1", 5)
	assert.Equal(t, summedQty(s), s.ItemCount())

	s.RemoveItem("i3")
	assert.Equal(t, summedQty(s), s.ItemCount())

	s.RemoveItem("does-not-exist")
	assert.Equal(t, summedQty(s), s.ItemCount())
}

func TestStore_UpdateQtyScenario(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("i1", "store-a", "dosa", 2, 50))
	before := s.ItemCount()

	s.UpdateItemQty("i1", 5)

	ct, ok := s.CartFor("store-a")
	require.True(t, ok)
	require.Len(t, ct.Items, 1)
	assert.Equal(t, 5, ct.Items[0].Qty)
	assert.Equal(t, 250.0, ct.Items[0].TotalPrice)
	assert.Equal(t, before+3, s.ItemCount())
}

func TestStore_UpdateQtyUnknownIDIsNoop(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("i1", "store-a", "dosa", 2, 50))
	before := s.Carts()

	s.UpdateItemQty("nope", 7)

	assert.Equal(t, before, s.Carts())
	assert.Equal(t, 2, s.ItemCount())
}

func TestStore_UpdateQtyZeroRemovesLine(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("i1", "store-a", "dosa", 2, 50))

	s.UpdateItemQty("i1", 0)

	assert.Equal(t, 0, s.ItemCount())
	assert.Equal(t, 0, s.StoreCount())
}

func TestStore_AddMergesIdenticalSelection(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("i1", "store-a", "dosa", 2, 50))
	s.AddItem(storeA(), item("i2", "store-a", "dosa", 1, 50))

	ct, ok := s.CartFor("store-a")
	require.True(t, ok)
	require.Len(t, ct.Items, 1, "identical selections should merge, not duplicate")
	assert.Equal(t, 3, ct.Items[0].Qty)
	assert.Equal(t, 150.0, ct.Items[0].TotalPrice)
	assert.Equal(t, 3, s.ItemCount())
}

func TestStore_AddKeepsDistinctCustomizations(t *testing.T) {
	plain := item("i1", "store-a", "dosa", 1, 50)
	spicy := item("i2", "store-a", "dosa", 1, 50)
	spicy.Customizations = []models.Customization{
		{GroupID: "g1", OptionID: "extra-chutney", Name: "Extra chutney", UnitPrice: 10, TotalPrice: 10, OrderQty: 1},
	}

	s := NewStore()
	s.AddItem(storeA(), plain)
	s.AddItem(storeA(), spicy)

	ct, ok := s.CartFor("store-a")
	require.True(t, ok)
	assert.Len(t, ct.Items, 2)
	// customized line totals include the delta
	assert.Equal(t, 60.0, ct.Items[1].TotalPrice)
}

func TestStore_RemoveCartPathsAgree(t *testing.T) {
	seed := func() *Store {
		s := NewStore()
		s.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))
		s.AddItem(storeA(), item("a2", "store-a", "idli", 1, 30))
		s.AddItem(storeB(), item("b1", "store-b", "soap", 3, 20))
		return s
	}

	byStore := seed()
	byStore.RemoveCart("store-a", nil, nil)

	byIDs := seed()
	byIDs.RemoveCart("store-a", nil, []string{"a1", "a2"})

	count := 2
	byCount := seed()
	byCount.RemoveCart("store-a", &count, nil)

	for _, s := range []*Store{byStore, byIDs, byCount} {
		_, ok := s.CartFor("store-a")
		assert.False(t, ok)
		assert.Equal(t, 3, s.ItemCount())
		assert.Equal(t, 1, s.StoreCount())
	}
}

func TestStore_RemoveCartSubset(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 2, 50))
	s.AddItem(storeA(), item("a2", "store-a", "idli", 1, 30))

	s.RemoveCart("store-a", nil, []string{"a1"})

	ct, ok := s.CartFor("store-a")
	require.True(t, ok)
	require.Len(t, ct.Items, 1)
	assert.Equal(t, "a2", ct.Items[0].ID)
	assert.Equal(t, 1, s.ItemCount())
}

func TestStore_ReorderReplacesStoreBatch(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))
	s.AddItem(storeA(), item("a2", "store-a", "idli", 1, 30))
	s.AddItem(storeB(), item("b1", "store-b", "soap", 3, 20))
	require.Equal(t, 5, s.ItemCount())

	s.Reorder([]models.CartItem{item("r1", "store-a", "vada", 4, 25)})

	ct, ok := s.CartFor("store-a")
	require.True(t, ok)
	require.Len(t, ct.Items, 1)
	assert.Equal(t, "r1", ct.Items[0].ID)
	assert.Equal(t, 4, ct.Items[0].Qty)
	// 5 before − 2 replaced for store-a + 4 incoming
	assert.Equal(t, 7, s.ItemCount())
	assert.Equal(t, summedQty(s), s.ItemCount())
}

func TestStore_RemoveLastItemDropsCart(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))

	s.RemoveItem("a1")

	assert.Empty(t, s.Carts(), "empty carts must not survive a read boundary")
	assert.Equal(t, 0, s.StoreCount())
}

func TestStore_OfferReplaceAndClear(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))

	s.ApplyOffer("store-a", models.AppliedOffer{OfferID: "FLAT10", Discount: 10})
	s.ApplyOffer("store-a", models.AppliedOffer{OfferID: "FLAT20", Discount: 20})

	offer, ok := s.OfferFor("store-a")
	require.True(t, ok)
	assert.Equal(t, "FLAT20", offer.OfferID, "re-apply replaces the prior offer")

	s.ClearOffer("store-a")
	_, ok = s.OfferFor("store-a")
	assert.False(t, ok)
}

func TestStore_ResetClearsEverything(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 2, 50))
	s.ApplyOffer("store-a", models.AppliedOffer{OfferID: "FLAT10", Discount: 10})

	s.ResetCart()

	assert.Empty(t, s.Carts())
	assert.Equal(t, 0, s.ItemCount())
	_, ok := s.OfferFor("store-a")
	assert.False(t, ok)
}

func TestStore_InitUserCartCoercesDefensively(t *testing.T) {
	s := NewStore()
	s.InitUserCart(nil, -3)
	assert.Empty(t, s.Carts())
	assert.Equal(t, 0, s.ItemCount())
}

func TestStore_ApplyServerSnapshotRevisionGuard(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))
	s.AddItem(storeB(), item("b1", "store-b", "soap", 1, 20))

	guard := s.RevisionSnapshot()

	// store-a mutates while the fetch is "in flight"
	s.UpdateItemQty("a1", 3)

	server := []models.Cart{
		{Store: storeA(), Items: []models.CartItem{item("srv-a", "store-a", "dosa", 1, 50)}},
		{Store: storeB(), Items: []models.CartItem{item("srv-b", "store-b", "soap", 2, 20)}},
	}
	s.ApplyServerSnapshot(server, guard)

	ctA, ok := s.CartFor("store-a")
	require.True(t, ok)
	assert.Equal(t, "a1", ctA.Items[0].ID, "locally mutated cart must keep its local version")
	assert.Equal(t, 3, ctA.Items[0].Qty)

	ctB, ok := s.CartFor("store-b")
	require.True(t, ok)
	assert.Equal(t, "srv-b", ctB.Items[0].ID, "untouched cart takes the server version")
	assert.Equal(t, summedQty(s), s.ItemCount())
}

func TestStore_ApplyServerSnapshotDropsUnmutatedMissingCarts(t *testing.T) {
	s := NewStore()
	s.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))
	guard := s.RevisionSnapshot()

	s.ApplyServerSnapshot(nil, guard)

	assert.Empty(t, s.Carts(), "server no longer reports the cart and nothing changed locally")
	assert.Equal(t, 0, s.ItemCount())
}
