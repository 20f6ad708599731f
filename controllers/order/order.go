package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/models"
	"github.com/pankajarora1984/chandan-sarees-api/store"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	UserID          string          `json:"userId" binding:"required"`
	CartID          string          `json:"cartId" binding:"required"`
	ShippingAddress *models.Address `json:"shippingAddress" binding:"required"`
	BillingAddress  *models.Address `json:"billingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	OrderID           string `json:"orderId" binding:"required"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	TrackingNumber string `json:"trackingNumber"`
	Notes          string `json:"notes"`
}

// -------- Handlers --------

// POST /api/orders/create
//
// Consumes (reads, does not delete) the user's current cart. The caller
// clears the cart explicitly after a successful placement.
func CreateOrder(orders *store.OrderStore, carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields: userId, cartId, shippingAddress"})
			return
		}
		if req.PaymentMethod == "" {
			req.PaymentMethod = "razorpay"
		}

		cart := carts.GetOrCreate(req.UserID)
		order, err := orders.Create(store.CreateOrderInput{
			UserID:          req.UserID,
			Cart:            cart,
			ShippingAddress: *req.ShippingAddress,
			BillingAddress:  req.BillingAddress,
			PaymentMethod:   req.PaymentMethod,
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Cart is empty or not found"})
			case errors.Is(err, store.ErrPaymentGateway):
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Payment gateway error", "message": "Failed to initialize payment"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create order", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": order, "message": "Order created successfully"})
	}
}

// POST /api/orders/verify-payment
func VerifyPayment(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing payment verification parameters"})
			return
		}

		order, err := orders.VerifyPayment(req.OrderID, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			case errors.Is(err, store.ErrSignatureMismatch):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Payment verification failed", "data": order})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Payment verification failed", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": order, "message": "Payment verified successfully"})
	}
}

// GET /api/orders/:userId?status=&page=&limit=
func GetUserOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		list, pagination := orders.ListByUser(
			c.Param("userId"),
			models.OrderStatus(c.Query("status")),
			page, limit,
		)
		c.JSON(http.StatusOK, gin.H{"success": true, "data": list, "pagination": pagination})
	}
}

// GET /api/orders/detail/:orderId
func GetOrderDetail(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.ByID(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// PUT /api/orders/:orderId/cancel
func CancelOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CancelOrderRequest
		_ = c.ShouldBindJSON(&req) // body optional

		order, err := orders.Cancel(c.Param("orderId"), req.Reason)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrOrderNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			case errors.Is(err, store.ErrOrderNotCancellable):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Order cannot be cancelled at this stage"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to cancel order", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": order, "message": "Order cancelled successfully"})
	}
}

// PUT /api/orders/:orderId/status (admin)
func UpdateOrderStatus(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Status is required"})
			return
		}

		status, err := store.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
			return
		}

		order, err := orders.UpdateStatus(c.Param("orderId"), status, req.TrackingNumber, req.Notes)
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order status", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    order,
			"message": fmt.Sprintf("Order status updated to %s", status),
		})
	}
}

// GET /api/orders/track/:orderNumber
func TrackOrder(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := orders.Track(c.Param("orderNumber"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": info})
	}
}

// GET /api/orders/admin/all (admin)
func GetAllOrders(orders *store.OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		list, pagination, stats := orders.AdminList(
			models.OrderStatus(c.Query("status")),
			c.DefaultQuery("sortBy", "newest"),
			page, limit,
		)
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"data":       list,
			"pagination": pagination,
			"stats":      stats,
		})
	}
}
