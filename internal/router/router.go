// Package router defines how HTTP routes are registered for the service.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/river-cruise-booking/internal/config"
	"github.com/iliyamo/river-cruise-booking/internal/handler"
	"github.com/iliyamo/river-cruise-booking/internal/middleware"
)

// RegisterPublic wires the customer-facing routes: the booking page,
// the slot listing (behind the Redis response cache when available) and
// the submission endpoint.
func RegisterPublic(e *echo.Echo, form *handler.FormHandler, slots *handler.SlotsHandler, bookings *handler.BookingHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/", form.Render)
	e.GET("/v1/slots", slots.List, middleware.NewRedisCache(cacheCfg, rdb))
	e.POST("/v1/bookings", bookings.Submit)
}

// RegisterAdmin wires the operator routes. Connect and the booking
// listing require the admin key; the OAuth callback is reached by
// Google's redirect and relies on the signed state token instead.
func RegisterAdmin(e *echo.Echo, admin *handler.AdminHandler, adminKeyHash string) {
	g := e.Group("/v1/admin", middleware.AdminKey(adminKeyHash))
	g.GET("/calendar/connect", admin.Connect)
	g.GET("/bookings", admin.ListBookings)

	e.GET("/v1/admin/calendar/callback", admin.Callback)
}
