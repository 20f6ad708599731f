package contactControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pankajarora1984/chandan-sarees-api/models"
	"github.com/pankajarora1984/chandan-sarees-api/store"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	phoneStrip   = regexp.MustCompile(`[\s\-()]`)
)

type SubmitContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type UpdateContactInput struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

type NewsletterInput struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// POST /api/contact
func SubmitContact(contacts *store.ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubmitContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields: name, email, message"})
			return
		}
		if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email format"})
			return
		}
		if input.Phone != "" && !phonePattern.MatchString(phoneStrip.ReplaceAllString(input.Phone, "")) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid phone number format"})
			return
		}

		msg := contacts.Submit(input.Name, input.Email, input.Phone, input.Subject, input.Message,
			c.ClientIP(), c.Request.UserAgent())

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Thank you for your message! We will get back to you soon.",
			"data": gin.H{
				"id":          msg.ID,
				"name":        msg.Name,
				"subject":     msg.Subject,
				"submittedAt": msg.CreatedAt,
			},
		})
	}
}

// GET /api/contact (admin)
func GetContactMessages(contacts *store.ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		messages, pagination, summary := contacts.List(store.ContactFilter{
			Status: models.ContactStatus(c.Query("status")),
			Search: c.Query("search"),
			SortBy: c.DefaultQuery("sortBy", "newest"),
			Page:   page,
			Limit:  limit,
		})

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"data":       messages,
			"pagination": pagination,
			"summary":    summary,
		})
	}
}

// GET /api/contact/info — static business profile.
func GetContactInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"business": gin.H{
					"name":        "Chandan Sarees",
					"tagline":     "Exquisite Indian Attire",
					"description": "Your trusted destination for authentic Indian attire. Quality, tradition, and elegance in every piece.",
				},
				"address": gin.H{
					"street":     "123 Textile Market, Commercial Street",
					"city":       "Bangalore",
					"state":      "Karnataka",
					"postalCode": "560001",
					"country":    "India",
					"full":       "123 Textile Market, Commercial Street, Bangalore, Karnataka 560001",
				},
				"contact": gin.H{
					"phones": []gin.H{
						{"type": "primary", "number": "+91 98765 43210"},
						{"type": "landline", "number": "+91 80 2234 5678"},
					},
					"emails": []gin.H{
						{"type": "general", "email": "info@chandansarees.com"},
						{"type": "orders", "email": "orders@chandansarees.com"},
						{"type": "support", "email": "support@chandansarees.com"},
					},
					"website": "https://chandansarees.com",
				},
				"hours": gin.H{
					"monday":    "10:00 AM - 8:00 PM",
					"tuesday":   "10:00 AM - 8:00 PM",
					"wednesday": "10:00 AM - 8:00 PM",
					"thursday":  "10:00 AM - 8:00 PM",
					"friday":    "10:00 AM - 8:00 PM",
					"saturday":  "10:00 AM - 8:00 PM",
					"sunday":    "11:00 AM - 7:00 PM",
				},
				"social": gin.H{
					"facebook":  "https://facebook.com/chandansarees",
					"instagram": "https://instagram.com/chandansarees",
					"whatsapp":  "https://wa.me/919876543210",
					"youtube":   "https://youtube.com/chandansarees",
				},
			},
		})
	}
}

// GET /api/contact/:id (admin) — marks new messages as read.
func GetContactMessage(contacts *store.ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := contacts.ByID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Contact message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
	}
}

// PUT /api/contact/:id (admin)
func UpdateContactMessage(contacts *store.ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		msg, err := contacts.UpdateStatus(c.Param("id"), models.ContactStatus(input.Status), input.AdminNotes)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrMessageNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Contact message not found"})
			case errors.Is(err, store.ErrInvalidContactStatus):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status. Must be one of: new, read, replied, resolved"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update contact message", "message": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": msg, "message": "Contact message updated successfully"})
	}
}

// DELETE /api/contact/:id (admin)
func DeleteContactMessage(contacts *store.ContactStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := contacts.Delete(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Contact message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": msg, "message": "Contact message deleted successfully"})
	}
}

// POST /api/contact/newsletter
func SubscribeNewsletter() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input NewsletterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email is required"})
			return
		}
		if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email format"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for subscribing to our newsletter!"})
	}
}
