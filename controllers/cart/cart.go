package cartControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/store"
)

type AddItemInput struct {
	ProductID     string `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize"`
	SelectedColor string `json:"selectedColor"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyCouponInput struct {
	CouponCode string `json:"couponCode" binding:"required"`
}

// GET /api/cart/:userId
func GetCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := carts.GetOrCreate(c.Param("userId"))
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// POST /api/cart/:userId/add
func AddItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product ID is required"})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		cart, productName, err := carts.AddItem(c.Param("userId"), input.ProductID, input.Quantity, input.SelectedSize, input.SelectedColor)
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add item to cart", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": fmt.Sprintf("%s added to cart", productName),
		})
	}
}

// PUT /api/cart/:userId/update/:itemId
//
// Quantity zero or below removes the line; the decrement path on the
// frontend relies on this single rule.
func UpdateItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid quantity is required"})
			return
		}

		cart, err := carts.UpdateItemQuantity(c.Param("userId"), c.Param("itemId"), *input.Quantity)
		if err != nil {
			if errors.Is(err, store.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update cart item", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart, "message": "Cart updated successfully"})
	}
}

// DELETE /api/cart/:userId/remove/:itemId
func RemoveItem(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, itemName, err := carts.RemoveItem(c.Param("userId"), c.Param("itemId"))
		if err != nil {
			if errors.Is(err, store.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to remove cart item", "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": fmt.Sprintf("%s removed from cart", itemName),
		})
	}
}

// DELETE /api/cart/:userId/clear
func ClearCart(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := carts.Clear(c.Param("userId"))
		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart, "message": "Cart cleared successfully"})
	}
}

// POST /api/cart/:userId/apply-coupon
func ApplyCoupon(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Coupon code is required"})
			return
		}

		cart, discount, err := carts.ApplyCoupon(c.Param("userId"), input.CouponCode)
		if err != nil {
			var minErr *store.CouponMinimumError
			switch {
			case errors.Is(err, store.ErrInvalidCoupon):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid coupon code"})
			case errors.As(err, &minErr):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": minErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to apply coupon", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cart,
			"message": fmt.Sprintf("Coupon %s applied successfully! You saved ₹%d", cart.Coupon.Code, discount),
		})
	}
}

// GET /api/cart/count/:userId
func CartCount(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, items := carts.Count(c.Param("userId"))
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"count": count, "items": items},
		})
	}
}
