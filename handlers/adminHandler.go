package handlers

import (
	"net/http"

	"MediMaga/admin"
	"MediMaga/middlewares"
	"MediMaga/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the staff dashboard: filtered lists and summary counts.
type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	q, err := queryFromRequest(c)
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}

	appointments, err := h.service.QueryAppointments(c.Request.Context(), q)
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

func (h *AdminHandler) ListContacts(c *gin.Context) {
	q, err := queryFromRequest(c)
	if err != nil {
		respondError(c, err, "Error fetching contacts")
		return
	}

	contacts, err := h.service.QueryContacts(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Error fetching contacts")
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success":  true,
		"total":    len(contacts),
		"contacts": contacts,
	}, http.StatusOK)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error computing statistics")
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success": true,
		"stats":   stats,
	}, http.StatusOK)
}

func queryFromRequest(c *gin.Context) (admin.Query, error) {
	return admin.ParseQuery(
		c.Query("search"),
		c.Query("status"),
		c.Query("priority"),
		c.Query("sort"),
	)
}
