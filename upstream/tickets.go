package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// CreateIssue opens an issue/grievance ticket against an order.
func (c *Client) CreateIssue(ctx context.Context, token string, req models.CreateIssueRequest) (*models.Ticket, error) {
	if req.OrderID == "" {
		return nil, &Error{Kind: KindPrecondition, Op: "create issue", Err: errors.New("missing order id")}
	}

	var out models.Ticket
	if err := c.do(ctx, "create issue", http.MethodPost, "/issues/create", nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTickets returns the user's ticket threads.
func (c *Client) ListTickets(ctx context.Context, token string) ([]models.Ticket, error) {
	q := url.Values{}
	q.Set("action", "list")

	var out []models.Ticket
	if err := c.do(ctx, "list tickets", http.MethodGet, "/tickets", q, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTicket fetches one ticket thread with its action timeline.
func (c *Client) GetTicket(ctx context.Context, token, ticketID string) (*models.Ticket, error) {
	if ticketID == "" {
		return nil, &Error{Kind: KindPrecondition, Op: "get ticket", Err: errors.New("missing ticket id")}
	}
	q := url.Values{}
	q.Set("action", "detail")
	q.Set("ticketId", ticketID)

	var out models.Ticket
	if err := c.do(ctx, "get ticket", http.MethodGet, "/tickets", q, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
