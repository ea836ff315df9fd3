package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// ResetCart clears everything for the user, offers included. Called on
// logout; the store instance is dropped so the next login rehydrates.
func ResetCart(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}

		st.ResetCart()
		persistAsync(sto, userID, st)
		reg.Drop(userID)

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart reset", gin.H{
			"carts":      []models.Cart{},
			"item_count": 0,
		}))
	}
}
