package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// RemoveItem drops one line from the cart.
func RemoveItem(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}
		itemID := c.Param("item_id")
		if itemID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "item_id is required"))
			return
		}

		st.RemoveItem(itemID)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", cartPayload(st)))
	}
}
