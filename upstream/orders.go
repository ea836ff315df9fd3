package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// ListOrders pages through the user's order history.
func (c *Client) ListOrders(ctx context.Context, token string, page, size int) (*models.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	q := url.Values{}
	q.Set("action", "list")
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out models.OrderListResponse
	if err := c.do(ctx, "list orders", http.MethodGet, "/orders", q, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder fetches the full order object for the detail screen.
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*models.OrderDetail, error) {
	if orderID == "" {
		return nil, &Error{Kind: KindPrecondition, Op: "get order", Err: errors.New("missing order id")}
	}
	q := url.Values{}
	q.Set("action", "detail")
	q.Set("orderId", orderID)

	var out models.OrderDetail
	if err := c.do(ctx, "get order", http.MethodGet, "/orders", q, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelOrder requests a buyer-side cancellation.
func (c *Client) CancelOrder(ctx context.Context, token, orderID, reasonCode string) (*models.CancelOrderResult, error) {
	if orderID == "" || reasonCode == "" {
		return nil, &Error{Kind: KindPrecondition, Op: "cancel order", Err: errors.New("missing order id or reason code")}
	}
	body := models.CancelOrderRequest{OrderID: orderID, ReasonCode: reasonCode}

	var out models.CancelOrderResult
	if err := c.do(ctx, "cancel order", http.MethodPost, "/cancel", nil, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOTP asks the backend to generate and send a delivery OTP.
func (c *Client) GetOTP(ctx context.Context, token, sendTo, orderID string) (*models.OTPResult, error) {
	if sendTo == "" {
		return nil, &Error{Kind: KindPrecondition, Op: "get otp", Err: errors.New("missing sendTo")}
	}
	q := url.Values{}
	q.Set("action", "gen")
	q.Set("sendTo", sendTo)
	if orderID != "" {
		q.Set("orderId", orderID)
	}

	var out models.OTPResult
	if err := c.do(ctx, "get otp", http.MethodGet, "/get-otp", q, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
