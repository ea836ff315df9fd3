package order_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	order_cache "github.com/martpe-org/martpeApp-sub003/cache"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// GetOrders lists the user's order history, served from the TTL cache when
// fresh.
func GetOrders(client *upstream.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
			return
		}
		token, _ := middleware.GetTokenFromContext(c)

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
		if page < 1 {
			page = 1
		}
		if size < 1 || size > 50 {
			size = 10
		}

		if cached, ok := order_cache.Get(userID, page, size); ok {
			respond(c, cached, page, size)
			return
		}

		list, err := client.ListOrders(c.Request.Context(), token, page, size)
		if err != nil {
			c.JSON(upstream.HTTPStatus(err), models.ErrorResponse(c, "Failed to fetch orders: "+err.Error()))
			return
		}
		order_cache.Set(userID, page, size, *list)
		respond(c, *list, page, size)
	}
}

func respond(c *gin.Context, list models.OrderListResponse, page, size int) {
	totalPages := 0
	if size > 0 {
		totalPages = (list.Count + size - 1) / size
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched", list.Orders, &models.Pagination{
		Page:       page,
		Limit:      size,
		Total:      list.Count,
		TotalPages: totalPages,
	}))
}
