package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// GetOrderByID fetches one full order for the detail screen.
func GetOrderByID(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := middleware.GetTokenFromContext(c)
		orderID := c.Param("order_id")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "order_id is required"))
			return
		}

		order, err := client.GetOrder(c.Request.Context(), token, orderID)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch order: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched", order))
	}
}
