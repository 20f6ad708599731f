package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/category"
)

func SetupCategoryRoutes(api *gin.RouterGroup, d Deps) {
	categories := api.Group("/categories")
	{
		categories.GET("", categoryControllers.GetCategories(d.Categories))
		categories.GET("/slug/:slug", categoryControllers.GetCategoryBySlug(d.Categories))
		categories.GET("/:id", categoryControllers.GetCategoryByID(d.Categories))

		// Category management (admin)
		categories.POST("", categoryControllers.CreateCategory(d.Categories))
		categories.PUT("/:id", categoryControllers.UpdateCategory(d.Categories))
		categories.DELETE("/:id", categoryControllers.DeleteCategory(d.Categories))
	}
}
