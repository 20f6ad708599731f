package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	orderControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/order"
	recommendationControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/recommendation"
	"github.com/pankajarora1984/chandan-sarees-api/payment"
	"github.com/pankajarora1984/chandan-sarees-api/routes"
	"github.com/pankajarora1984/chandan-sarees-api/store"
)

func main() {
	log.Println("✅ Starting Chandan Sarees API...")

	// Load environment variables
	_ = godotenv.Load()

	// In-memory stores, seeded with the demo catalog on every start
	products := store.NewProductStore()
	products.Seed(store.SeedProducts())

	categories := store.NewCategoryStore(products)
	categories.Seed(store.SeedCategories())

	carts := store.NewCartStore(products)
	contacts := store.NewContactStore()
	preferences := store.NewPreferenceStore()

	orders := store.NewOrderStore(payment.NewClientFromEnv())
	orders.OnStatusChange = orderControllers.BroadcastStatusChange

	recommender := recommendationControllers.NewProviderFromEnv()
	log.Printf("🤖 Recommendation provider: %s", recommender.Name())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success":   true,
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Products:    products,
		Categories:  categories,
		Carts:       carts,
		Orders:      orders,
		Contacts:    contacts,
		Preferences: preferences,
		Recommender: recommender,
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
