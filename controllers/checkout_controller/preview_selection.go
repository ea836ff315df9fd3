package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/checkout"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
)

// PreviewSelection builds the read-only checkout summary for one cart
// without touching the backend. Missing address or fulfillment yields 422
// rather than a partial total.
func PreviewSelection(reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
			return
		}

		var req models.PreviewSelectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		st := reg.Ensure(c.Request.Context(), userID)
		ct, found := st.CartFor(req.StoreID)
		if !found {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No cart for this store"))
			return
		}

		in := checkout.Input{
			Cart:          ct,
			Address:       req.Address,
			FulfillmentID: req.FulfillmentID,
		}
		if offer, ok := st.OfferFor(req.StoreID); ok {
			in.Offer = &offer
		}

		sel, err := checkout.BuildSelection(in)
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart is empty"))
			return
		case errors.Is(err, checkout.ErrIncompleteSelection):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Select an address and fulfillment first"))
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout preview", sel))
	}
}
