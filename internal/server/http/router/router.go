package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/atelier/internal/server/http/handlers"
	"github.com/polkiloo/atelier/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. A nil limiter
// leaves the slot query unthrottled.
func Setup(facade handlers.AtelierFacade, limiter middleware.Limiter, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	slotsHandler := handlers.NewSlotsHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Live)
	engine.GET("/readyz", healthHandler.Ready)

	api := engine.Group("/api")
	api.GET("/appointments/slots", middleware.RateLimit(limiter, "slots", logger), slotsHandler.Available)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/checkout", checkoutHandler.Checkout)
	authed.GET("/user/orders", orderHandler.List)
	authed.GET("/user/orders/:id/items", orderHandler.Items)
	authed.GET("/user/orders/:id/appointment", orderHandler.Appointment)
	authed.POST("/user/orders/:id/appointment", orderHandler.Rebook)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.StaffOnly())
	admin.GET("/appointments", adminHandler.Appointments)
	admin.GET("/statuses", adminHandler.Statuses)
	admin.POST("/orders/:id/items/status", adminHandler.UpdateStatuses)

	return engine
}
