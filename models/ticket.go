package models

import "time"

// IssueDescriptor classifies a grievance per the IGM taxonomy.
type IssueDescriptor struct {
	Code      string `json:"code" binding:"required"`
	ShortDesc string `json:"short_desc" binding:"required"`
	LongDesc  string `json:"long_desc,omitempty"`
}

// IssueCustomer identifies the complainant.
type IssueCustomer struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// IssueItemRef points at an order line the issue is about.
type IssueItemRef struct {
	ItemID string `json:"item_id"`
	Qty    int    `json:"qty"`
}

// CreateIssueRequest opens a ticket against an order.
type CreateIssueRequest struct {
	OrderID    string          `json:"order_id" binding:"required"`
	Descriptor IssueDescriptor `json:"descriptor" binding:"required"`
	Customer   IssueCustomer   `json:"customer" binding:"required"`
	Items      []IssueItemRef  `json:"items,omitempty"`
	Images     []string        `json:"images,omitempty"`
}

// TicketAction is one entry of a ticket's respondent/complainant timeline.
type TicketAction struct {
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	ShortDesc string    `json:"short_desc,omitempty"`
	At        time.Time `json:"at"`
}

// Ticket is one issue/grievance thread.
type Ticket struct {
	ID         string          `json:"id"`
	OrderID    string          `json:"order_id"`
	Status     string          `json:"status"`
	Descriptor IssueDescriptor `json:"descriptor"`
	Actions    []TicketAction  `json:"actions,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PresignAssetsRequest asks the backend for direct-upload URLs.
type PresignAssetsRequest struct {
	AssetNames []string `json:"assetNames" binding:"required,min=1"`
	Type       string   `json:"type" binding:"required"`
}

// PresignedAsset is one per-asset PUT target.
type PresignedAsset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
