package routes

import (
	"github.com/gin-gonic/gin"

	recommendationControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/recommendation"
)

func SetupRecommendationRoutes(api *gin.RouterGroup, d Deps) {
	recs := api.Group("/recommendations")
	{
		recs.POST("/suggest", recommendationControllers.Suggest(d.Products, d.Preferences, d.Recommender))
		recs.POST("/track", recommendationControllers.TrackInteraction(d.Preferences))

		recs.GET("/preferences/:userId", recommendationControllers.GetPreferences(d.Preferences))
		recs.PUT("/preferences/:userId", recommendationControllers.UpdatePreferences(d.Preferences))

		recs.GET("/stats/:userId", recommendationControllers.GetStats(d.Products, d.Preferences))
	}
}
