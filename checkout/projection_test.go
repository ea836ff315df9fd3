package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martpe-org/martpeApp-sub003/models"
)

func testCart() models.Cart {
	return models.Cart{
		Store: models.StoreInfo{ID: "store-a", Name: "Store A"},
		Items: []models.CartItem{
			{
				ID: "i1", StoreID: "store-a", Slug: "dosa", Qty: 2,
				UnitPrice: 50, UnitMaxPrice: 60, TotalPrice: 110, TotalMaxPrice: 130,
				Customizations: []models.Customization{
					{GroupID: "g1", OptionID: "o1", Name: "Ghee", UnitPrice: 10, TotalPrice: 10, OrderQty: 1},
				},
				Product: models.ProductSnapshot{Name: "Dosa"},
			},
			{
				ID: "i2", StoreID: "store-a", Slug: "idli", Qty: 1,
				UnitPrice: 30, UnitMaxPrice: 30, TotalPrice: 30, TotalMaxPrice: 30,
				Product: models.ProductSnapshot{Name: "Idli"},
			},
		},
	}
}

func testAddress() *models.DeliveryAddress {
	return &models.DeliveryAddress{ID: "addr-1", Name: "Home", City: "Bengaluru", Pincode: "560001"}
}

func TestBuildSelection_ComputesTotals(t *testing.T) {
	sel, err := BuildSelection(Input{Cart: testCart(), Address: testAddress(), FulfillmentID: "f1"})
	require.NoError(t, err)

	assert.Equal(t, "store-a", sel.StoreID)
	assert.Equal(t, "addr-1", sel.AddressID)
	assert.Equal(t, "f1", sel.FulfillmentID)
	assert.Equal(t, 140.0, sel.Subtotal)
	assert.Equal(t, 140.0, sel.Total)
	// i1 saves 130−110 = 20
	assert.Equal(t, 20.0, sel.Savings)
	require.Len(t, sel.Breakup, 2)
	assert.Equal(t, "Dosa x 2", sel.Breakup[0].Title)
	assert.Equal(t, 110.0, sel.Breakup[0].Price)
}

func TestBuildSelection_ChildrenAreInformational(t *testing.T) {
	sel, err := BuildSelection(Input{Cart: testCart(), Address: testAddress(), FulfillmentID: "f1"})
	require.NoError(t, err)

	entry := sel.Breakup[0]
	require.Len(t, entry.Children, 1)
	assert.Equal(t, "Ghee", entry.Children[0].Title)
	// The parent price is authoritative regardless of child decomposition.
	assert.NotEqual(t, entry.Children[0].Price, entry.Price)
	assert.Equal(t, 110.0, entry.Price)
}

func TestBuildSelection_OfferDiscount(t *testing.T) {
	sel, err := BuildSelection(Input{
		Cart:          testCart(),
		Address:       testAddress(),
		FulfillmentID: "f1",
		Offer:         &models.AppliedOffer{OfferID: "FLAT20", Discount: 20},
	})
	require.NoError(t, err)

	assert.Equal(t, 120.0, sel.Total)
	assert.Equal(t, 40.0, sel.Savings)
	last := sel.Breakup[len(sel.Breakup)-1]
	assert.Equal(t, "Offer FLAT20", last.Title)
	assert.Equal(t, -20.0, last.Price)
}

func TestBuildSelection_OfferTotalWins(t *testing.T) {
	sel, err := BuildSelection(Input{
		Cart:          testCart(),
		Address:       testAddress(),
		FulfillmentID: "f1",
		Offer:         &models.AppliedOffer{OfferID: "FLAT20", Discount: 20, Total: 123},
	})
	require.NoError(t, err)
	assert.Equal(t, 123.0, sel.Total, "server-computed offer total is authoritative")
}

func TestBuildSelection_IncompleteInputs(t *testing.T) {
	_, err := BuildSelection(Input{Cart: testCart(), FulfillmentID: "f1"})
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	_, err = BuildSelection(Input{Cart: testCart(), Address: testAddress()})
	assert.ErrorIs(t, err, ErrIncompleteSelection)

	_, err = BuildSelection(Input{Cart: testCart(), Address: &models.DeliveryAddress{}, FulfillmentID: "f1"})
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}

func TestBuildSelection_EmptyCart(t *testing.T) {
	_, err := BuildSelection(Input{Cart: models.Cart{}, Address: testAddress(), FulfillmentID: "f1"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildSelection_DoesNotAliasCartItems(t *testing.T) {
	ct := testCart()
	sel, err := BuildSelection(Input{Cart: ct, Address: testAddress(), FulfillmentID: "f1"})
	require.NoError(t, err)

	sel.Items[0].Qty = 99
	assert.Equal(t, 2, ct.Items[0].Qty, "projection must not mutate its source")
}
