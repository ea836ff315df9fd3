package models

// Customization is one selected modifier on a cart line (size, add-on, ...).
// TotalPrice must equal UnitPrice * OrderQty.
type Customization struct {
	GroupID    string  `json:"groupId"`
	OptionID   string  `json:"optionId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	OrderQty   int     `json:"order_qty"`
}

// ProductSnapshot is the denormalized product copy captured when the item is
// added, so the cart can render without another product fetch.
type ProductSnapshot struct {
	Name           string   `json:"name"`
	Image          string   `json:"image,omitempty"`
	BasePrice      float64  `json:"base_price"`
	InStock        bool     `json:"in_stock"`
	Customizable   bool     `json:"customizable"`
	CustomGroupIDs []string `json:"custom_group_ids,omitempty"`
}

// CartItem is one purchasable line in a cart.
type CartItem struct {
	ID             string          `json:"_id"`
	StoreID        string          `json:"store_id"`
	Slug           string          `json:"slug"`
	CatalogID      string          `json:"catalog_id"`
	Qty            int             `json:"qty"`
	UnitPrice      float64         `json:"unit_price"`
	UnitMaxPrice   float64         `json:"unit_max_price"`
	TotalPrice     float64         `json:"total_price"`
	TotalMaxPrice  float64         `json:"total_max_price"`
	Customizations []Customization `json:"customizations,omitempty"`
	Product        ProductSnapshot `json:"product"`
}

// CustomizationsTotal sums the price deltas of the selected customizations.
func (i CartItem) CustomizationsTotal() float64 {
	var sum float64
	for _, cz := range i.Customizations {
		sum += cz.TotalPrice
	}
	return sum
}

// SameSelection reports whether two lines are the same product with the same
// customization selection, in order. Used to merge duplicate adds.
func (i CartItem) SameSelection(other CartItem) bool {
	if i.Slug != other.Slug || i.CatalogID != other.CatalogID || i.StoreID != other.StoreID {
		return false
	}
	if len(i.Customizations) != len(other.Customizations) {
		return false
	}
	for idx, cz := range i.Customizations {
		oz := other.Customizations[idx]
		if cz.GroupID != oz.GroupID || cz.OptionID != oz.OptionID || cz.OrderQty != oz.OrderQty {
			return false
		}
	}
	return true
}

// StoreInfo identifies the seller a cart belongs to.
type StoreInfo struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Cart holds every line a user intends to buy from one seller. A cart with
// zero items never crosses a read/write boundary.
type Cart struct {
	Store StoreInfo  `json:"store"`
	Items []CartItem `json:"cart_items"`
}

// ItemQty sums the quantities of the cart's lines.
func (c Cart) ItemQty() int {
	var n int
	for _, it := range c.Items {
		n += it.Qty
	}
	return n
}

// AppliedOffer is the optimistic per-cart offer selection. Authoritative
// validation happens server-side at checkout.
type AppliedOffer struct {
	OfferID  string  `json:"offerId"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Request DTOs for the cart surface.

type AddItemRequest struct {
	StoreID        string          `json:"store_id" binding:"required"`
	StoreName      string          `json:"store_name"`
	Slug           string          `json:"slug" binding:"required"`
	CatalogID      string          `json:"catalog_id" binding:"required"`
	Qty            int             `json:"qty" binding:"required,min=1"`
	UnitPrice      float64         `json:"unit_price" binding:"required"`
	UnitMaxPrice   float64         `json:"unit_max_price"`
	Customizations []Customization `json:"customizations,omitempty"`
	Product        ProductSnapshot `json:"product"`
}

type UpdateItemQtyRequest struct {
	Qty int `json:"qty" binding:"min=0"`
}

type UpdateCustomizationsRequest struct {
	Customizations []Customization `json:"customizations" binding:"required"`
}

type RemoveCartRequest struct {
	ItemsCount  *int     `json:"cart_items_count,omitempty"`
	CartItemIDs []string `json:"cart_item_ids,omitempty"`
}

type ApplyOfferRequest struct {
	OfferID  string  `json:"offerId" binding:"required"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

type ReorderRequest struct {
	Items []CartItem `json:"items" binding:"required,min=1"`
}
