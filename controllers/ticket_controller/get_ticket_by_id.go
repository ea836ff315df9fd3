package ticket_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// GetTicketByID fetches one ticket thread with its action timeline.
func GetTicketByID(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := middleware.GetTokenFromContext(c)
		ticketID := c.Param("ticket_id")
		if ticketID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "ticket_id is required"))
			return
		}

		ticket, err := client.GetTicket(c.Request.Context(), token, ticketID)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch ticket: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Ticket fetched", ticket))
	}
}
