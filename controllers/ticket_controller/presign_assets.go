package ticket_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// PresignAssets returns one direct-upload PUT URL per asset name. The client
// then PUTs the file bytes straight to those URLs, bypassing the gateway.
func PresignAssets(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := middleware.GetTokenFromContext(c)

		var req models.PresignAssetsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		assets, err := client.PresignAssets(c.Request.Context(), token, req.AssetNames, req.Type)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to presign assets: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Presigned URLs generated", assets))
	}
}
