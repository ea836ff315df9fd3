package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/martpe-org/martpeApp-sub003/cart"
	"github.com/martpe-org/martpeApp-sub003/cartsync"
	"github.com/martpe-org/martpeApp-sub003/config"
	"github.com/martpe-org/martpeApp-sub003/middleware"
	"github.com/martpe-org/martpeApp-sub003/routes"
	"github.com/martpe-org/martpeApp-sub003/storage"
	"github.com/martpe-org/martpeApp-sub003/upstream"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Redis backs the rate limiter and (by default) cart snapshots
	config.ConnectRedis()

	// Persistence bridge for cart snapshots
	var store storage.Storage
	switch backend := config.StorageBackend(); backend {
	case "postgres":
		config.InitSnapshotDB()
		g, err := storage.NewGorm(config.SnapshotGorm)
		if err != nil {
			log.Fatalf("❌ Failed to initialize snapshot store: %v", err)
		}
		store = g
	case "memory":
		log.Println("⚠️ STORAGE_BACKEND=memory, cart snapshots will not survive restarts")
		store = storage.NewMemory()
	default:
		store = storage.NewRedis(config.RedisClient)
	}
	log.Println("✅ Cart snapshot store initialized")

	// Upstream commerce backend client
	client := upstream.New(config.UpstreamBaseURL(), config.UpstreamTimeout())
	log.Println("✅ Upstream client ready:", config.UpstreamBaseURL())

	// Cart registry is owned here and injected into the handlers
	registry := cart.NewRegistry(store)
	orchestrator := cartsync.New(client, store)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	api.Use(middleware.RateLimiter(300, time.Minute))

	deps := routes.Deps{
		Registry:     registry,
		Storage:      store,
		Orchestrator: orchestrator,
		Upstream:     client,
	}
	routes.SetupCartRoutes(api, deps)
	routes.SetupCheckoutRoutes(api, deps)
	routes.SetupOrderRoutes(api, deps)
	routes.SetupTicketRoutes(api, deps)
	log.Println("✅ Storefront routes registered")

	addr := ":" + config.Port()
	fmt.Println("🚀 Gateway is running on http://localhost" + addr)
	router.Run(addr)
}
