package routes

import (
	"github.com/gin-gonic/gin"

	recommendationControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/recommendation"
	"github.com/pankajarora1984/chandan-sarees-api/store"
)

// Deps carries every store the route handlers need. main builds one and
// hands it down; handlers close over the pieces they use.
type Deps struct {
	Products    *store.ProductStore
	Categories  *store.CategoryStore
	Carts       *store.CartStore
	Orders      *store.OrderStore
	Contacts    *store.ContactStore
	Preferences *store.PreferenceStore
	Recommender recommendationControllers.Provider
}

// SetupRoutes is the single entry-point that wires every route group
// under /api.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api")

	SetupProductRoutes(api, d)
	SetupCategoryRoutes(api, d)
	SetupCartRoutes(api, d)
	SetupOrderRoutes(api, d)
	SetupContactRoutes(api, d)
	SetupRecommendationRoutes(api, d)
}
