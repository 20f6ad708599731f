package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

// GetProductByID returns a single catalog product.
// URL param: /api/products/:id
func GetProductByID(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.ByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}

// GetProductsByCategory returns every product in a category slug.
// URL param: /api/products/category/:category
func GetProductsByCategory(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := products.ByCategory(c.Param("category"))
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    list,
			"count":   len(list),
		})
	}
}
