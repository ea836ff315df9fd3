package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// RemoveCart removes a whole cart, or just the listed items when the body
// names them. The store derives the count decrement itself either way.
func RemoveCart(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
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

		// Body is optional: an empty body means "remove everything".
		var req models.RemoveCartRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
				return
			}
		}

		st.RemoveCart(storeID, req.ItemsCount, req.CartItemIDs)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart removed", cartPayload(st)))
	}
}
