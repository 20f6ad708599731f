package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/cart"
)

func SetupCartRoutes(api *gin.RouterGroup, d Deps) {
	cart := api.Group("/cart")
	{
		cart.GET("/:userId", cartControllers.GetCart(d.Carts))
		cart.GET("/count/:userId", cartControllers.CartCount(d.Carts))

		cart.POST("/:userId/add", cartControllers.AddItem(d.Carts))
		cart.PUT("/:userId/update/:itemId", cartControllers.UpdateItem(d.Carts))
		cart.DELETE("/:userId/remove/:itemId", cartControllers.RemoveItem(d.Carts))
		cart.DELETE("/:userId/clear", cartControllers.ClearCart(d.Carts))

		cart.POST("/:userId/apply-coupon", cartControllers.ApplyCoupon(d.Carts))
	}
}
