package recommendationControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/models"
	"github.com/pankajarora1984/chandan-sarees-api/store"
)

// -------- Request Structs --------

// CurrentProductInput is the product the user is looking at. Clients send
// the whole product object; only the id is used, the catalog is
// authoritative for everything else.
type CurrentProductInput struct {
	ID string `json:"id"`
}

type SuggestInput struct {
	UserID           string               `json:"userId"`
	Preferences      models.Preferences   `json:"preferences"`
	CurrentProduct   *CurrentProductInput `json:"currentProduct"`
	CurrentProductID string               `json:"currentProductId"` // id-only shorthand for currentProduct
	Context          string               `json:"context"`          // product-view | cart | checkout | general
}

func (in SuggestInput) currentProductID() string {
	if in.CurrentProduct != nil && in.CurrentProduct.ID != "" {
		return in.CurrentProduct.ID
	}
	return in.CurrentProductID
}

type TrackInput struct {
	UserID    string `json:"userId" binding:"required"`
	Action    string `json:"action" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

type UpdatePreferencesInput struct {
	Preferences models.Preferences `json:"preferences"`
}

// -------- Handlers --------

// POST /api/recommendations/suggest
func Suggest(products *store.ProductStore, prefs *store.PreferenceStore, provider Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SuggestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}
		if input.Context == "" {
			input.Context = "general"
		}

		var current *models.Product
		if id := input.currentProductID(); id != "" {
			if product, err := products.ByID(id); err == nil {
				current = &product
			}
		}

		merged := input.Preferences
		if input.UserID != "" {
			if hasPreferences(input.Preferences) {
				merged = prefs.Update(input.UserID, input.Preferences)
			} else {
				merged = prefs.Preferences(input.UserID)
			}
			if current != nil {
				prefs.Track(input.UserID, "view", current.ID)
			}
		}

		req := SuggestionRequest{
			UserID:         input.UserID,
			Preferences:    merged,
			CurrentProduct: current,
			Context:        input.Context,
			History:        prefs.Interactions(input.UserID),
			Catalog:        products.All(),
		}

		recs, err := provider.Suggest(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to generate recommendations",
				"message": "Both AI and fallback systems are currently unavailable",
			})
			return
		}

		log.Printf("🎯 Generated %d recommendations for user %q via %s", len(recs), input.UserID, provider.Name())

		explanation := "No specific recommendations available"
		if len(recs) > 0 {
			explanation = recs[0].Explanation
		}
		c.JSON(http.StatusOK, gin.H{
			"success":         true,
			"provider":        provider.Name(),
			"recommendations": recs,
			"explanation":     explanation,
			"context":         input.Context,
		})
	}
}

// POST /api/recommendations/track
func TrackInteraction(prefs *store.PreferenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TrackInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields: userId, action, productId"})
			return
		}
		prefs.Track(input.UserID, input.Action, input.ProductID)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Interaction tracked successfully"})
	}
}

// GET /api/recommendations/preferences/:userId
func GetPreferences(prefs *store.PreferenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"preferences": prefs.Preferences(c.Param("userId")),
		})
	}
}

// PUT /api/recommendations/preferences/:userId
func UpdatePreferences(prefs *store.PreferenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdatePreferencesInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}
		prefs.Update(c.Param("userId"), input.Preferences)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Preferences updated successfully"})
	}
}

// GET /api/recommendations/stats/:userId
func GetStats(products *store.ProductStore, prefs *store.PreferenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")
		interactions := prefs.Interactions(userID)

		recent := interactions
		if len(recent) > 10 {
			recent = recent[len(recent)-10:]
		}
		shown := 0
		for _, i := range interactions {
			if i.Action == "recommendation_shown" {
				shown++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"stats": gin.H{
				"totalInteractions":     len(interactions),
				"recentInteractions":    recent,
				"preferences":           prefs.Preferences(userID),
				"topCategories":         prefs.TopCategories(userID, products),
				"recommendationHistory": shown,
			},
		})
	}
}

func hasPreferences(p models.Preferences) bool {
	return p.Occasion != "" || p.PriceRange != "" || p.Material != "" || p.Style != "" || p.Size != ""
}
