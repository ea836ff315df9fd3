package ticket_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// CreateIssue opens a grievance ticket against an order. Image references
// must already be uploaded via the presigned-URL flow.
func CreateIssue(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := middleware.GetTokenFromContext(c)

		var req models.CreateIssueRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		ticket, err := client.CreateIssue(c.Request.Context(), token, req)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to create issue: "+err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Issue created", ticket))
	}
}
