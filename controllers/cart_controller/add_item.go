package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// AddItem applies the add optimistically and persists in the background.
// Identical product+customization adds merge quantities into the existing
// line instead of creating a duplicate row.
func AddItem(reg *cart.Registry, sto storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, st, ok := userStore(c, reg)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid input: "+err.Error()))
			return
		}

		storeName := req.StoreName
		if storeName == "" {
			storeName = "Unknown Store"
		}
		item := models.CartItem{
			ID:             uuid.NewString(),
			StoreID:        req.StoreID,
			Slug:           req.Slug,
			CatalogID:      req.CatalogID,
			Qty:            req.Qty,
			UnitPrice:      req.UnitPrice,
			UnitMaxPrice:   req.UnitMaxPrice,
			Customizations: req.Customizations,
			Product:        req.Product,
		}
		st.AddItem(models.StoreInfo{ID: req.StoreID, Name: storeName}, item)
		persistAsync(sto, userID, st)

		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to cart", cartPayload(st)))
	}
}
