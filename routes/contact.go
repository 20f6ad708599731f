package routes

import (
	"github.com/gin-gonic/gin"

	contactControllers "github.com/pankajarora1984/chandan-sarees-api/controllers/contact"
)

func SetupContactRoutes(api *gin.RouterGroup, d Deps) {
	contact := api.Group("/contact")
	{
		contact.POST("", contactControllers.SubmitContact(d.Contacts))
		contact.GET("/info", contactControllers.GetContactInfo())
		contact.POST("/newsletter", contactControllers.SubscribeNewsletter())

		// Inbox management (admin)
		contact.GET("", contactControllers.GetContactMessages(d.Contacts))
		contact.GET("/:id", contactControllers.GetContactMessage(d.Contacts))
		contact.PUT("/:id", contactControllers.UpdateContactMessage(d.Contacts))
		contact.DELETE("/:id", contactControllers.DeleteContactMessage(d.Contacts))
	}
}
