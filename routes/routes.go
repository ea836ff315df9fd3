package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/cartsync"
	"github.com/martpe-org/martpeApp-sub003/controllers/cart_controller"
	"github.com/martpe-org/martpeApp-sub003/controllers/checkout_controller"
	"github.com/martpe-org/martpeApp-sub003/controllers/order_controller"
	"github.com/martpe-org/martpeApp-sub003/controllers/ticket_controller"
	"github.com/martpe-org/martpeApp-sub003/storage"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

// Deps is everything the handlers need, built once at the composition root.
// There is no package-level store anywhere; the registry travels through here.
type Deps struct {
	Registry     *cart.Registry
	Storage      storage.Storage
	Orchestrator *cartsync.Orchestrator
	Upstream     *upstream.Client
}

func SetupCartRoutes(rg *gin.RouterGroup, d Deps) {
	ct := rg.Group("/cart")

	ct.GET("", cart_controller.GetCart(d.Registry))
	ct.POST("/sync", cart_controller.SyncCart(d.Registry, d.Orchestrator))
	ct.POST("/items", cart_controller.AddItem(d.Registry, d.Storage))
	ct.PATCH("/items/:item_id/qty", cart_controller.UpdateItemQty(d.Registry, d.Storage))
	ct.PATCH("/items/:item_id/customizations", cart_controller.UpdateItemCustomizations(d.Registry, d.Storage))
	ct.DELETE("/items/:item_id", cart_controller.RemoveItem(d.Registry, d.Storage))
	ct.DELETE("/stores/:store_id", cart_controller.RemoveCart(d.Registry, d.Storage))
	ct.POST("/stores/:store_id/offer", cart_controller.ApplyOffer(d.Registry, d.Storage))
	ct.DELETE("/stores/:store_id/offer", cart_controller.ClearOffer(d.Registry, d.Storage))
	ct.POST("/reorder", cart_controller.Reorder(d.Registry, d.Storage))
	ct.DELETE("", cart_controller.ResetCart(d.Registry, d.Storage))
}

func SetupCheckoutRoutes(rg *gin.RouterGroup, d Deps) {
	co := rg.Group("/checkout")

	co.POST("/preview", checkout_controller.PreviewSelection(d.Registry))
	co.POST("/select", checkout_controller.SelectCart(d.Registry, d.Upstream))
}

func SetupOrderRoutes(rg *gin.RouterGroup, d Deps) {
	orders := rg.Group("/orders")

	orders.GET("", order_controller.GetOrders(d.Upstream))
	orders.GET("/:order_id", order_controller.GetOrderByID(d.Upstream))
	orders.POST("/cancel", order_controller.CancelOrder(d.Upstream))
	orders.GET("/otp", order_controller.GetOTP(d.Upstream))
}

func SetupTicketRoutes(rg *gin.RouterGroup, d Deps) {
	tickets := rg.Group("/tickets")

	tickets.POST("", ticket_controller.CreateIssue(d.Upstream))
	tickets.GET("", ticket_controller.GetTickets(d.Upstream))
	tickets.GET("/:ticket_id", ticket_controller.GetTicketByID(d.Upstream))
	tickets.POST("/assets/presign", ticket_controller.PresignAssets(d.Upstream))
}
