package models

import "time"

// OrderListItem is one row of the order history list.
type OrderListItem struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	StoreID     string    `json:"store_id"`
	StoreName   string    `json:"store_name"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderListResponse wraps the paginated list.
type OrderListResponse struct {
	Orders []OrderListItem `json:"orders"`
	Count  int             `json:"count"`
}

// OrderItem is one fulfilled line of an order.
type OrderItem struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Image          string          `json:"image,omitempty"`
	Qty            int             `json:"qty"`
	UnitPrice      float64         `json:"unit_price"`
	TotalPrice     float64         `json:"total_price"`
	Customizations []Customization `json:"customizations,omitempty"`
}

// Fulfillment describes how (part of) an order is delivered.
type Fulfillment struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Status   string     `json:"status"`
	TrackURL string     `json:"track_url,omitempty"`
	ETA      *time.Time `json:"eta,omitempty"`
}

// OrderDetail is the full order object for the detail screen.
type OrderDetail struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	StoreID         string          `json:"store_id"`
	StoreName       string          `json:"store_name"`
	Status          string          `json:"status"`
	DeliveryAddress DeliveryAddress `json:"delivery_address"`
	Fulfillments    []Fulfillment   `json:"fulfillments"`
	Items           []OrderItem     `json:"items"`
	Breakup         []BreakupEntry  `json:"breakup"`
	TotalAmount     float64         `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CancelOrderRequest carries the buyer-side cancellation.
type CancelOrderRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	ReasonCode string `json:"reason_code" binding:"required"`
}

// CancelOrderResult reports the backend's cancellation outcome.
type CancelOrderResult struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OTPResult acknowledges an OTP generation request.
type OTPResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
