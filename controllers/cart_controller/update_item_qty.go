package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// UpdateItemQty sets a line's quantity; zero removes the line. Unknown item
// ids leave the cart unchanged rather than failing.
func UpdateItemQty(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
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

		var req models.UpdateItemQtyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		st.UpdateItemQty(itemID, req.Qty)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity updated", cartPayload(st)))
	}
}
