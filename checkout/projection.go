package checkout

import (
	"errors"
	"fmt"

	"github.com/martpe-org/martpeApp-sub003/models"
)

var (
	// ErrIncompleteSelection means the address or fulfillment is missing;
	// the projection refuses to compute a misleading partial total.
	ErrIncompleteSelection = errors.New("checkout selection incomplete")
	// ErrEmptyCart means there is nothing to check out.
	ErrEmptyCart = errors.New("cart is empty")
)

// Input is everything the projection depends on. The offer is the cart's
// optimistic selection; authoritative validation happens server-side.
type Input struct {
	Cart          models.Cart
	Address       *models.DeliveryAddress
	FulfillmentID string
	Offer         *models.AppliedOffer
}

// BuildSelection derives the read-only checkout summary from one cart. Pure:
// callers rebuild it whenever cart, address or fulfillment changes.
//
// Each item becomes one breakup entry whose price is authoritative; its
// customizations appear as informational children and are never re-summed.
// When the applied offer carries a server-computed total, that total wins
// over the local subtotal-minus-discount arithmetic.
func BuildSelection(in Input) (*models.CheckoutSelection, error) {
	if len(in.Cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if in.Address == nil || in.Address.ID == "" || in.FulfillmentID == "" {
		return nil, ErrIncompleteSelection
	}

	items := make([]models.CartItem, len(in.Cart.Items))
	copy(items, in.Cart.Items)

	breakup := make([]models.BreakupEntry, 0, len(items)+1)
	var subtotal, savings float64
	for _, it := range items {
		entry := models.BreakupEntry{
			Title: fmt.Sprintf("%s x %d", it.Product.Name, it.Qty),
			Price: it.TotalPrice,
		}
		for _, cz := range it.Customizations {
			entry.Children = append(entry.Children, models.BreakupEntry{
				Title: cz.Name,
				Price: cz.TotalPrice,
			})
		}
		breakup = append(breakup, entry)
		subtotal += it.TotalPrice
		if it.TotalMaxPrice > it.TotalPrice {
			savings += it.TotalMaxPrice - it.TotalPrice
		}
	}

	total := subtotal
	if in.Offer != nil {
		if in.Offer.Discount > 0 {
			breakup = append(breakup, models.BreakupEntry{
				Title: "Offer " + in.Offer.OfferID,
				Price: -in.Offer.Discount,
			})
			savings += in.Offer.Discount
			total = subtotal - in.Offer.Discount
		}
		if in.Offer.Total > 0 {
			total = in.Offer.Total
		}
	}

	return &models.CheckoutSelection{
		StoreID:       in.Cart.Store.ID,
		AddressID:     in.Address.ID,
		FulfillmentID: in.FulfillmentID,
		Items:         items,
		Breakup:       breakup,
		Subtotal:      subtotal,
		Total:         total,
		Savings:       savings,
	}, nil
}
