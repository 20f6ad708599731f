package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/pankajarora1984/chandan-sarees-api/controllers/product"
)

func SetupProductRoutes(api *gin.RouterGroup, d Deps) {
	products := api.Group("/products")
	{
		// Browse & search
		products.GET("", productcontroller.GetProducts(d.Products))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(d.Products))
		products.GET("/:id", productcontroller.GetProductByID(d.Products))

		// Catalog management (admin)
		products.POST("", productcontroller.CreateProduct(d.Products))
		products.PUT("/:id", productcontroller.UpdateProduct(d.Products))
		products.DELETE("/:id", productcontroller.DeleteProduct(d.Products))
		products.GET("/export/excel", productcontroller.ExportProductsToExcel(d.Products))
	}
}
