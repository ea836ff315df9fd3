package order_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// GetOTP asks the backend to generate and send a delivery OTP.
func GetOTP(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := middleware.GetTokenFromContext(c)

		sendTo := c.Query("sendTo")
		if sendTo == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "sendTo is required"))
			return
		}
		orderID := c.Query("orderId")

		result, err := client.GetOTP(c.Request.Context(), token, sendTo, orderID)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to generate OTP: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "OTP requested", result))
	}
}
