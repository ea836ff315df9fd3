package models

// DeliveryAddress is the address chosen at checkout.
type DeliveryAddress struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone,omitempty"`
	Line1   string  `json:"line1"`
	Line2   string  `json:"line2,omitempty"`
	City    string  `json:"city"`
	State   string  `json:"state"`
	Pincode string  `json:"pincode"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// BreakupEntry is one row of the checkout price decomposition. Children are
// informational sub-components (tax inside a fee); the parent's price is
// authoritative and children are never re-summed client-side.
type BreakupEntry struct {
	Title    string         `json:"title"`
	Price    float64        `json:"price"`
	Children []BreakupEntry `json:"children,omitempty"`
}

// CheckoutSelection is the read-only projection the checkout screen renders.
// It is rebuilt whenever its source cart, address or fulfillment changes,
// never mutated in place, and never persisted.
type CheckoutSelection struct {
	StoreID       string         `json:"store_id"`
	AddressID     string         `json:"address_id"`
	FulfillmentID string         `json:"fulfillment_id"`
	Items         []CartItem     `json:"items"`
	Breakup       []BreakupEntry `json:"breakup"`
	Subtotal      float64        `json:"subtotal"`
	Total         float64        `json:"total"`
	Savings       float64        `json:"savings"`
}

// SelectCartRequest initiates checkout for one cart against the commerce
// backend.
type SelectCartRequest struct {
	Lat               float64 `json:"lat" binding:"required"`
	Lon               float64 `json:"lon" binding:"required"`
	Pincode           string  `json:"pincode" binding:"required"`
	Context           string  `json:"context"`
	ProviderID        string  `json:"provider_id" binding:"required"`
	LocationID        string  `json:"location_id" binding:"required"`
	StoreID           string  `json:"storeId" binding:"required"`
	DeliveryAddressID string  `json:"deliveryAddressId" binding:"required"`
	OfferID           *string `json:"offerId,omitempty"`
}

// SelectCartAck is the backend's acknowledgement; the transaction/message ids
// are used to poll the async quote.
type SelectCartAck struct {
	TransactionID string `json:"transaction_id"`
	MessageID     string `json:"message_id"`
}

// PreviewSelectionRequest drives the local projection without touching the
// backend.
type PreviewSelectionRequest struct {
	StoreID       string           `json:"store_id" binding:"required"`
	FulfillmentID string           `json:"fulfillment_id"`
	Address       *DeliveryAddress `json:"address,omitempty"`
}
