package ticket_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// GetTickets lists the user's issue threads.
func GetTickets(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := middleware.GetTokenFromContext(c)

		tickets, err := client.ListTickets(c.Request.Context(), token)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch tickets: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Tickets fetched", tickets))
	}
}
