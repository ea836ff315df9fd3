package checkout_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// SelectCart initiates checkout against the backend for one cart. The local
// cart must exist and be non-empty; the applied offer id rides along so the
// backend can validate it.
func SelectCart(reg *cart.Registry, client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
			return
		}
		token, _ := middleware.GetTokenFromContext(c)

		var req models.SelectCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		st := reg.Ensure(c.Request.Context(), userID)
		ct, found := st.CartFor(req.StoreID)
		if !found || len(ct.Items) == 0 {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Cart is empty"))
			return
		}
		if req.OfferID == nil {
			if offer, ok := st.OfferFor(req.StoreID); ok {
				req.OfferID = &offer.OfferID
			}
		}

		ack, err := client.SelectCart(c.Request.Context(), token, req)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Checkout select failed: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout initiated", ack))
	}
}
