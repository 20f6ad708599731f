package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, d Deps) {
	orders := api.Group("/orders")
	{
		// Checkout & payment
		orders.POST("/create", orderControllers.CreateOrder(d.Orders, d.Carts))
		orders.POST("/verify-payment", orderControllers.VerifyPayment(d.Orders))

		// websocket endpoint for real-time order status updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Order history & tracking
		orders.GET("/:userId", orderControllers.GetUserOrders(d.Orders))
		orders.GET("/detail/:orderId", orderControllers.GetOrderDetail(d.Orders))
		orders.GET("/track/:orderNumber", orderControllers.TrackOrder(d.Orders))

		// Lifecycle updates
		orders.PUT("/:orderId/cancel", orderControllers.CancelOrder(d.Orders))
		orders.PUT("/:orderId/status", orderControllers.UpdateOrderStatus(d.Orders))

		// Fetch all orders (admin)
		orders.GET("/admin/all", orderControllers.GetAllOrders(d.Orders))
	}
}
