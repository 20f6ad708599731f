package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

// GET /api/products
func GetProducts(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		filter := store.ProductFilter{
			Category:     c.Query("category"),
			FeaturedOnly: c.Query("featured") == "true",
			InStockOnly:  c.Query("inStock") == "true",
			Search:       c.Query("search"),
			SortBy:       c.Query("sortBy"),
		}

		if v := c.Query("minPrice"); v != "" {
			mp, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid minPrice"})
				return
			}
			filter.MinPrice = mp
		}
		if v := c.Query("maxPrice"); v != "" {
			mp, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid maxPrice"})
				return
			}
			filter.MaxPrice = mp
		}

		// 2️⃣ Pagination params
		filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

		// 3️⃣ Run the listing
		list, pagination := products.List(filter)
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"data":       list,
			"pagination": pagination,
		})
	}
}
