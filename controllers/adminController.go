package controllers

import (
	"MediMaga/handlers"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Handler *handlers.AdminHandler
}

func NewAdminController(handler *handlers.AdminHandler) *AdminController {
	return &AdminController{Handler: handler}
}

func (ac *AdminController) RegisterRoutes(router *gin.Engine, staffAuth gin.HandlerFunc) {
	adminGroup := router.Group("/admin").Use(staffAuth)
	{
		adminGroup.GET("/appointments", ac.Handler.ListAppointments)
		adminGroup.GET("/contacts", ac.Handler.ListContacts)
		adminGroup.GET("/stats", ac.Handler.GetStats)
	}
}
