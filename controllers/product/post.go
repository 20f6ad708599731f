package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

type CreateProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Price         int      `json:"price" binding:"required,min=1"`
	OriginalPrice int      `json:"originalPrice"`
	Category      string   `json:"category" binding:"required"`
	CategoryName  string   `json:"categoryName"`
	Images        []string `json:"images"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Material      string   `json:"material"`
	Occasion      []string `json:"occasion"`
	Tags          []string `json:"tags"`
}

// POST /api/products (admin)
func CreateProduct(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields: name, description, price, category"})
			return
		}

		product := products.Create(store.ProductInput{
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
			Tags:          input.Tags,
		})

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": product, "message": "Product created successfully"})
	}
}
