package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// SelectCart initiates checkout for one cart. The backend quotes
// asynchronously; the ack's transaction/message ids drive the poll.
func (c *Client) SelectCart(ctx context.Context, token string, req models.SelectCartRequest) (*models.SelectCartAck, error) {
	if req.StoreID == "" || req.DeliveryAddressID == "" {
		return nil, &Error{Kind: KindPrecondition, Op: "select cart", Err: errors.New("missing store id or delivery address")}
	}

	var out models.SelectCartAck
	if err := c.do(ctx, "select cart", http.MethodPost, "/v1/select-cart", nil, token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
