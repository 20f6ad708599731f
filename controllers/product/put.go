package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *int     `json:"price"`
	OriginalPrice *int     `json:"originalPrice"`
	Category      *string  `json:"category"`
	CategoryName  *string  `json:"categoryName"`
	Images        []string `json:"images"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Material      *string  `json:"material"`
	Occasion      []string `json:"occasion"`
	InStock       *bool    `json:"inStock"`
	Featured      *bool    `json:"featured"`
	Tags          []string `json:"tags"`
}

// PUT /api/products/:id (admin) — partial update, id immutable.
func UpdateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		product, err := products.Update(c.Param("id"), store.ProductUpdate{
			Name:          input.Name,
			Description:   input.Description,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Category:      input.Category,
			CategoryName:  input.CategoryName,
			Images:        input.Images,
			Colors:        input.Colors,
			Sizes:         input.Sizes,
			Material:      input.Material,
			Occasion:      input.Occasion,
			InStock:       input.InStock,
			Featured:      input.Featured,
			Tags:          input.Tags,
		})
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": product, "message": "Product updated successfully"})
	}
}
