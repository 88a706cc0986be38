package routes

import (
	"net/http"

	"MediMaga/config"
	"MediMaga/controllers"
	"MediMaga/handlers"
	"MediMaga/middlewares"
	"MediMaga/services"
	"MediMaga/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies are the collaborators main builds from the configuration.
type Dependencies struct {
	Appointments services.AppointmentStore
	Contacts     services.ContactStore
	Notifier     services.BookingNotifier
	Events       services.EventPublisher
	HealthChecks map[string]controllers.HealthCheck
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cfg *config.AppConfig, deps Dependencies) http.Handler {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middlewares.SentryMiddleware())
	router.Use(middlewares.ErrorHandler())
	router.Use(middlewares.LoggingMiddleware())
	router.Use(middlewares.PrometheusMetrics())

	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	if token := cfg.GetBearerToken(); token != "" {
		router.Use(middlewares.ValidateBearerToken(token))
	}

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	staffAuth := staffAuthMiddleware(cfg)

	appointmentService := services.NewAppointmentService(deps.Appointments, deps.Notifier, deps.Events)
	contactService := services.NewContactService(deps.Contacts, deps.Events)
	adminService := services.NewAdminService(deps.Appointments, deps.Contacts)

	controllers.NewAppointmentController(handlers.NewAppointmentHandler(appointmentService)).RegisterRoutes(router, staffAuth)
	controllers.NewContactController(handlers.NewContactHandler(contactService)).RegisterRoutes(router, staffAuth)
	controllers.NewAdminController(handlers.NewAdminHandler(adminService)).RegisterRoutes(router, staffAuth)

	controllers.SetupRootRoute(router, deps.HealthChecks)

	return router
}

// staffAuthMiddleware requires a staff access token. Without a symmetric key (local
// development only, production refuses to start) the staff routes are open.
func staffAuthMiddleware(cfg *config.AppConfig) gin.HandlerFunc {
	if cfg.SymmetricKey == "" {
		utils.GetLogger().Warn("SYMMETRIC_KEY is not set, staff routes are unauthenticated")
		return func(c *gin.Context) { c.Next() }
	}
	return middlewares.TokenAuthMiddleware([]byte(cfg.SymmetricKey), middlewares.StaffRoles...)
}
