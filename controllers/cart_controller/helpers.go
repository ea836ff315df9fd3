package cart_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/models"
	"github.com/martpe-org/martpeApp-sub003/storage"
)

// userStore resolves the caller's hydrated cart store, responding 401 itself
// when the auth context is missing.
func userStore(c *gin.Context, reg *cart.Registry) (string, *cart.Store, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return "", nil, false
	}
	return userID, reg.Ensure(c.Request.Context(), userID), true
}

// persistAsync writes the snapshot in the background. Mutations are
// optimistic; persistence failure must never block or fail the response.
func persistAsync(sto storage.Storage, userID string, st *cart.Store) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sto.SaveCart(ctx, userID, st.SnapshotForSave()); err != nil {
			log.Printf("⚠️ cart persist failed for %s: %v", userID, err)
		}
	}()
}

// cartPayload is the body every cart mutation responds with.
func cartPayload(st *cart.Store) gin.H {
	return gin.H{
		"carts":       st.Carts(),
		"item_count":  st.ItemCount(),
		"store_count": st.StoreCount(),
	}
}
