package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

func TestRegistry_HydratesFromStorageOnce(t *testing.T) {
	mem := storage.NewMemory()
	saved := []models.Cart{
		{Store: storeA(), Items: []models.CartItem{item("a1", "store-a", "dosa", 2, 50)}},
	}
	require.NoError(t, mem.SaveCart(context.Background(), "u1", saved))

	reg := NewRegistry(mem)
	st := reg.Ensure(context.Background(), "u1")
	assert.Equal(t, 2, st.ItemCount())

	// Same instance on the second access
	assert.Same(t, st, reg.Ensure(context.Background(), "u1"))
}

func TestRegistry_UnknownUserStartsEmpty(t *testing.T) {
	reg := NewRegistry(storage.NewMemory())
	st := reg.Ensure(context.Background(), "fresh")
	assert.Equal(t, 0, st.ItemCount())
	assert.Empty(t, st.Carts())
}

func TestRegistry_DropForgetsStore(t *testing.T) {
	reg := NewRegistry(storage.NewMemory())
	st := reg.Ensure(context.Background(), "u1")
	st.AddItem(storeA(), item("a1", "store-a", "dosa", 1, 50))

	reg.Drop("u1")

	fresh := reg.Ensure(context.Background(), "u1")
	assert.NotSame(t, st, fresh)
	assert.Equal(t, 0, fresh.ItemCount(), "nothing was persisted, rehydration starts empty")
}
