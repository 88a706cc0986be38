package controllers

import (
	"MediMaga/handlers"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	Handler *handlers.AppointmentHandler
}

func NewAppointmentController(handler *handlers.AppointmentHandler) *AppointmentController {
	return &AppointmentController{Handler: handler}
}

// RegisterRoutes wires the appointment routes. Booking and the patient lookup are
// public; everything else goes through staffAuth.
func (ac *AppointmentController) RegisterRoutes(router *gin.Engine, staffAuth gin.HandlerFunc) {
	router.POST("/appointments", ac.Handler.BookAppointment)
	router.GET("/appointments/patient/:email", ac.Handler.GetPatientAppointments)

	staff := router.Group("/appointments").Use(staffAuth)
	{
		staff.GET("", ac.Handler.GetAllAppointments)
		staff.PATCH("/:id", ac.Handler.UpdateAppointment)
		staff.DELETE("/:id", ac.Handler.DeleteAppointment)
		staff.DELETE("", ac.Handler.DeleteAllAppointments)
	}
}
