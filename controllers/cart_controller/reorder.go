package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// Reorder merges a past order's items back into the cart, replacing any
// existing items of the same stores so rows are not duplicated.
func Reorder(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}

		var req models.ReorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		for i := range req.Items {
			if req.Items[i].ID == "" {
				req.Items[i].ID = uuid.NewString()
			}
		}
		st.Reorder(req.Items)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Order items added to cart", cartPayload(st)))
	}
}
