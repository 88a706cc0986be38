package controllers

import (
	"context"
	"net/http"
	"time"

	"MediMaga/monitoring"

	"github.com/gin-gonic/gin"
)

// HealthCheck checks one dependency.
type HealthCheck func(ctx context.Context) error

var endpoints = []string{
	"POST /appointments - Book appointment",
	"GET /appointments - View all appointments (staff)",
	"GET /appointments/patient/:email - View patient appointments",
	"PATCH /appointments/:id - Update appointment status or notes (staff)",
	"DELETE /appointments/:id - Cancel appointment (staff)",
	"DELETE /appointments - Delete all appointments (staff)",
	"POST /contacts - Submit contact form",
	"GET /contacts - View all contacts (staff)",
	"PATCH /contacts/:id - Update contact status or priority (staff)",
	"DELETE /contacts/:id - Delete contact (staff)",
	"DELETE /contacts - Delete all contacts (staff)",
	"GET /admin/appointments - Filter and sort appointments (staff)",
	"GET /admin/contacts - Filter and sort contacts (staff)",
	"GET /admin/stats - Dashboard statistics (staff)",
}

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "MediMaga Backend API is running!",
		"endpoints": endpoints,
	})
}

func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				results[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "up"
		}

		c.JSON(status, gin.H{
			"success": status == http.StatusOK,
			"checks":  results,
		})
	}
}

// SetupRootRoute registers the endpoint listing, health and metrics routes.
func SetupRootRoute(router *gin.Engine, checks map[string]HealthCheck) {
	router.GET("/", rootHandler)
	router.GET("/health", healthHandler(checks))
	router.GET("/metrics", gin.WrapH(monitoring.Handler()))
}
