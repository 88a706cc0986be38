package controllers

import (
	"MediMaga/handlers"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Handler *handlers.ContactHandler
}

func NewContactController(handler *handlers.ContactHandler) *ContactController {
	return &ContactController{Handler: handler}
}

func (cc *ContactController) RegisterRoutes(router *gin.Engine, staffAuth gin.HandlerFunc) {
	router.POST("/contacts", cc.Handler.SubmitContact)

	staff := router.Group("/contacts").Use(staffAuth)
	{
		staff.GET("", cc.Handler.GetAllContacts)
		staff.PATCH("/:id", cc.Handler.UpdateContact)
		staff.DELETE("/:id", cc.Handler.DeleteContact)
		staff.DELETE("", cc.Handler.DeleteAllContacts)
	}
}
