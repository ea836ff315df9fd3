package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	order_cache "github.com/martpe-org/martpeApp-sub003/cache"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// CancelOrder forwards a buyer-side cancellation and invalidates the user's
// cached order pages so the list reflects the new status.
func CancelOrder(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
			return
		}
		token, _ := middleware.GetTokenFromContext(c)

		var req models.CancelOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		result, err := client.CancelOrder(c.Request.Context(), token, req.OrderID, req.ReasonCode)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to cancel order: "+err.Error()))
			return
		}

		order_cache.Invalidate(userID)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Order cancelled", result))
	}
}
