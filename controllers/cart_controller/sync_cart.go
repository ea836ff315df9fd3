package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/cartsync"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// SyncCart reconciles the local store with the backend's cart list on
// demand (pull-to-refresh). A failed fetch leaves local state untouched.
func SyncCart(reg *cart.Registry, orch *cartsync.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}
		token, _ := middleware.GetTokenFromContext(c)

		applied, err := orch.Sync(c.Request.Context(), st, userID, token)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Cart sync failed: "+err.Error()))
			return
		}

		msg := "Cart already up to date"
		if applied {
			msg = "Cart synced"
		}
		payload := cartPayload(st)
		payload["applied"] = applied
		c.JSON(http.StatusOK, models.SuccessResponse(c, msg, payload))
	}
}
