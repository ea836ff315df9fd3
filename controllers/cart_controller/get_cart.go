package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
)

// GetCart returns the local (optimistic) cart view immediately; it never
// waits on a network sync.
func GetCart(reg *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, st, ok := userStore(c, reg)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched", cartPayload(st)))
	}
}
