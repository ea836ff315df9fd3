package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// UpdateItemCustomizations replaces a line's customization selection. The
// new line total is derived here from the unit price, quantity and the
// incoming selection; quantity and the running count are untouched.
func UpdateItemCustomizations(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
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

		var req models.UpdateCustomizationsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		cartView, found := findItem(st, itemID)
		if !found {
			// Not-found is a no-op at the store layer; report the current state.
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Item not in cart", cartPayload(st)))
			return
		}

		var czTotal float64
		for _, cz := range req.Customizations {
			czTotal += cz.TotalPrice
		}
		newTotal := cartView.UnitPrice*float64(cartView.Qty) + czTotal
		st.UpdateItemCustomizations(itemID, req.Customizations, newTotal)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Customizations updated", cartPayload(st)))
	}
}

func findItem(st *cart.Store, itemID string) (models.CartItem, bool) {
	for _, ct := range st.Carts() {
		for _, it := range ct.Items {
			if it.ID == itemID {
				return it, true
			}
		}
	}
	return models.CartItem{}, false
}
