package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

// DELETE /api/products/:id (admin)
func DeleteProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Delete(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product", "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product, "message": "Product deleted successfully"})
	}
}
