package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martpe-org/martpeApp-sub003/models"
)

func cartWith(storeID string, items ...models.CartItem) models.Cart {
	return models.Cart{Store: models.StoreInfo{ID: storeID, Name: "Store " + storeID}, Items: items}
}

func TestSanitize_DropsBrokenRecords(t *testing.T) {
	in := []models.Cart{
		cartWith("s1", models.CartItem{ID: "i1", Qty: 1}, models.CartItem{Qty: 2}), // second item has no id
		cartWith("", models.CartItem{ID: "i2", Qty: 1}),                            // no store reference
		cartWith("s2"),                                                             // empty
		cartWith("s3", models.CartItem{ID: ""}),                                    // emptied by item filtering
	}

	out := Sanitize(in)

	require.Len(t, out, 1)
	assert.Equal(t, "s1", out[0].Store.ID)
	require.Len(t, out[0].Items, 1)
	assert.Equal(t, "i1", out[0].Items[0].ID)
}

func TestSanitize_Idempotent(t *testing.T) {
	in := []models.Cart{
		cartWith("s1", models.CartItem{ID: "i1", Qty: 1}, models.CartItem{Qty: 2}),
		cartWith("", models.CartItem{ID: "i2", Qty: 1}),
	}
	once := Sanitize(in)
	twice := Sanitize(once)
	assert.Equal(t, once, twice)
}

func TestSanitize_CleanInputUnchanged(t *testing.T) {
	in := []models.Cart{cartWith("s1", models.CartItem{ID: "i1", Qty: 3})}
	assert.Equal(t, in, Sanitize(in))
}

func TestMemory_RoundTrip(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	carts := []models.Cart{
		cartWith("s1",
			models.CartItem{ID: "i1", StoreID: "s1", Slug: "dosa", Qty: 2, UnitPrice: 50, TotalPrice: 100,
				Customizations: []models.Customization{{GroupID: "g1", OptionID: "o1", Name: "Ghee", UnitPrice: 10, TotalPrice: 10, OrderQty: 1}}},
		),
		cartWith("s2", models.CartItem{ID: "i2", StoreID: "s2", Slug: "soap", Qty: 1, UnitPrice: 20, TotalPrice: 20}),
	}
	require.NoError(t, mem.SaveCart(ctx, "u1", carts))

	loaded, err := mem.LoadCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, Sanitize(carts), loaded)

	// Save-load-save is stable
	require.NoError(t, mem.SaveCart(ctx, "u1", loaded))
	again, err := mem.LoadCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, loaded, again)
}

func TestMemory_MissingKeyLoadsEmpty(t *testing.T) {
	loaded, err := NewMemory().LoadCart(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestMemory_SaveSanitizes(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	dirty := []models.Cart{
		cartWith("s1", models.CartItem{ID: "i1", Qty: 1}),
		cartWith("", models.CartItem{ID: "orphan", Qty: 1}),
	}
	require.NoError(t, mem.SaveCart(ctx, "u1", dirty))

	loaded, err := mem.LoadCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "s1", loaded[0].Store.ID)
}
