package handlers

import (
	"fmt"
	"net/http"

	"MediMaga/middlewares"
	"MediMaga/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service *services.ContactService
}

func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input services.SubmitContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.HttpError(c, invalidBodyMessage, http.StatusBadRequest)
		return
	}

	contact, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		respondError(c, err, "Internal server error. Please try again later.")
		return
	}
	middlewares.RespondJSON(c, gin.H{
		"success":   true,
		"message":   "Thank you for contacting us! We will get back to you soon.",
		"contactId": contact.ID,
	}, http.StatusCreated)
}

func (h *ContactHandler) GetAllContacts(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
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

func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := trimmedParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		middlewares.HttpError(c, invalidBodyMessage, http.StatusBadRequest)
		return
	}

	contact, err := h.service.UpdateStatus(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err, "Error updating contact")
		return
	}
	logStaffAction(c, "Contact updated", zap.String("id", id))
	middlewares.RespondJSON(c, gin.H{
		"success": true,
		"message": "Contact updated successfully",
		"contact": contact,
	}, http.StatusOK)
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := trimmedParam(c, "id")
	if !ok {
		return
	}

	contact, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error deleting contact")
		return
	}
	logStaffAction(c, "Contact deleted", zap.String("id", id))
	middlewares.RespondJSON(c, gin.H{
		"success":        true,
		"message":        "Contact deleted successfully",
		"deletedContact": contact,
	}, http.StatusOK)
}

func (h *ContactHandler) DeleteAllContacts(c *gin.Context) {
	count, err := h.service.DeleteAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error deleting contacts")
		return
	}
	logStaffAction(c, "Contacts deleted", zap.Int64("count", count))
	middlewares.RespondJSON(c, gin.H{
		"success":      true,
		"message":      fmt.Sprintf("Deleted %d contacts successfully", count),
		"deletedCount": count,
	}, http.StatusOK)
}
