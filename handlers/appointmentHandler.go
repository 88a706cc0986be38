package handlers

import (
	"fmt"
	"net/http"

	"MediMaga/middlewares"
	"MediMaga/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var input services.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.HttpError(c, invalidBodyMessage, http.StatusBadRequest)
		return
	}

	appointment, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Internal server error. Please try again later.")
		return
	}

	middlewares.RespondJSON(c, gin.H{
		"success":       true,
		"message":       "Appointment booked successfully! Confirmation details sent to your email.",
		"appointmentId": appointment.ID,
		"appointmentDetails": gin.H{
			"doctorName": appointment.DoctorName,
			"date":       appointment.AppointmentDate,
			"time":       appointment.AppointmentTime,
			"fee":        appointment.ConsultationFee,
		},
	}, http.StatusCreated)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success":      true,
		"total":        len(appointments),
		"appointments": appointments,
	}, http.StatusOK)
}

func (h *AppointmentHandler) GetPatientAppointments(c *gin.Context) {
	appointments, err := h.service.ListByPatient(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success":      true,
		"total":        len(appointments),
		"appointments": appointments,
	}, http.StatusOK)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := trimmedParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.HttpError(c, invalidBodyMessage, http.StatusBadRequest)
		return
	}

	appointment, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Error updating appointment")
		return
	}
	logStaffAction(c, "Appointment updated", zap.String("id", id), zap.String("status", string(appointment.Status)))
	middlewares.RespondJSON(c, gin.H{
		"success":     true,
		"message":     "Appointment updated successfully",
		"appointment": appointment,
	}, http.StatusOK)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := trimmedParam(c, "id")
	if !ok {
		return
	}

	appointment, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error cancelling appointment")
		return
	}
	logStaffAction(c, "Appointment cancelled", zap.String("id", id))
	middlewares.RespondJSON(c, gin.H{
		"success":            true,
		"message":            "Appointment cancelled successfully",
		"deletedAppointment": appointment,
	}, http.StatusOK)
}

func (h *AppointmentHandler) DeleteAllAppointments(c *gin.Context) {
	count, err := h.service.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error deleting appointments")
		return
	}
	logStaffAction(c, "Appointments deleted", zap.Int64("count", count))
	middlewares.RespondJSON(c, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Deleted %d appointments successfully", count),
		"deletedCount": count,
	}, http.StatusOK)
}
