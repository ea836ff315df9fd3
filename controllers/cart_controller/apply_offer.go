package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// ApplyOffer records the optimistic offer pick for one cart. Re-applying
// replaces the previous pick; the backend revalidates at checkout.
func ApplyOffer(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}
		storeID := c.Param("store_id")
		if storeID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "store_id is required"))
			return
		}

		var req models.ApplyOfferRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		st.ApplyOffer(storeID, models.AppliedOffer{
			OfferID:  req.OfferID,
			Discount: req.Discount,
			Total:    req.Total,
		})
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer applied", gin.H{
			"store_id": storeID,
			"offerId":  req.OfferID,
		}))
	}
}

// ClearOffer removes the cart's offer entirely.
func ClearOffer(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}
		storeID := c.Param("store_id")
		if storeID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "store_id is required"))
			return
		}

		st.ClearOffer(storeID)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Offer cleared", gin.H{"store_id": storeID}))
	}
}
