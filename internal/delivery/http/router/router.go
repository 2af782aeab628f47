// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	AlertHandler    *handler.AlertHandler
	StatsHandler    *handler.StatsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	alertHandler    *handler.AlertHandler
	statsHandler    *handler.StatsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		alertHandler:    params.AlertHandler,
		statsHandler:    params.StatsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)
	api.GET("/stats", r.statsHandler.Overview)

	userGroup := api.Group("/users")
	{
		userGroup.POST("/location", r.locationHandler.ReportLocation)
		userGroup.GET("/nearby", r.locationHandler.FindNearby)
		userGroup.GET("/:id/location", r.locationHandler.GetLocation)
	}

	alertGroup := api.Group("/alerts")
	{
		alertGroup.POST("/sos", r.alertHandler.TriggerSOS)
		alertGroup.POST("/cancel", r.alertHandler.CancelSOS)
		alertGroup.GET("/history/:id", r.alertHandler.AlertHistory)
	}
}
