package models

// Wire shapes as the commerce backend actually sends them. These are loose on
// purpose: the backend omits store info for dark sellers and reports either
// inline items or only a count. They are converted to the strict local model
// at the network edge and never travel further.

// ServerCartItem mirrors one cart line on the wire.
type ServerCartItem struct {
	ID             string           `json:"_id"`
	Slug           string           `json:"slug"`
	CatalogID      string           `json:"catalog_id"`
	Qty            int              `json:"qty"`
	UnitPrice      float64          `json:"unit_price"`
	UnitMaxPrice   float64          `json:"unit_max_price"`
	TotalPrice     float64          `json:"total_price"`
	TotalMaxPrice  float64          `json:"total_max_price"`
	Customizations []Customization  `json:"customizations,omitempty"`
	Product        *ProductSnapshot `json:"product,omitempty"`
}

// ServerStoreInfo mirrors the optional embedded store document.
type ServerStoreInfo struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// ServerCart mirrors one cart document from GET /carts.
type ServerCart struct {
	ID             string           `json:"_id"`
	StoreID        string           `json:"store_id"`
	Store          *ServerStoreInfo `json:"store,omitempty"`
	CartItems      []ServerCartItem `json:"cart_items"`
	CartItemsCount int              `json:"cartItemsCount"`
}

// HasItems reports whether the server considers this cart non-empty.
func (sc ServerCart) HasItems() bool {
	return len(sc.CartItems) > 0 || sc.CartItemsCount > 0
}

// ToLocalCart converts a server cart into the strict local shape. Missing
// store info falls back to the cart's store id and a placeholder name.
func (sc ServerCart) ToLocalCart() Cart {
	store := StoreInfo{ID: sc.StoreID, Name: "Unknown Store"}
	if sc.Store != nil {
		store.ID = sc.Store.ID
		store.Name = sc.Store.Name
		store.Logo = sc.Store.Logo
		if store.ID == "" {
			store.ID = sc.StoreID
		}
	}

	items := make([]CartItem, 0, len(sc.CartItems))
	for _, si := range sc.CartItems {
		it := CartItem{
			ID:             si.ID,
			StoreID:        store.ID,
			Slug:           si.Slug,
			CatalogID:      si.CatalogID,
			Qty:            si.Qty,
			UnitPrice:      si.UnitPrice,
			UnitMaxPrice:   si.UnitMaxPrice,
			TotalPrice:     si.TotalPrice,
			TotalMaxPrice:  si.TotalMaxPrice,
			Customizations: si.Customizations,
		}
		if si.Product != nil {
			it.Product = *si.Product
		}
		items = append(items, it)
	}
	return Cart{Store: store, Items: items}
}
