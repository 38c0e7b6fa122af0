package routes

import (
	"tripmarket/internal/adapter/http/handlers"
	"tripmarket/internal/adapter/http/middlewares"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathListings = "/listings"
	PathVendors  = "/vendors"
	PathWebhooks = "/webhooks"

	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, availabilityHandler *handlers.AvailabilityHandler, webhookHandler *handlers.WebhookHandler, resolveRole middlewares.RoleResolver) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", middlewares.RequireRole(resolveRole, RoleAdmin), bookingHandler.ListBookings)
		bookings.GET("/:id", bookingHandler.GetBooking)
		bookings.PATCH("/:id", middlewares.RequireRole(resolveRole, RoleAdmin), bookingHandler.OverrideBooking)
		bookings.DELETE("/:id", middlewares.RequireRole(resolveRole, RoleAdmin, RoleVendor), bookingHandler.DeleteBooking)
	}

	listings := rg.Group(PathListings)
	{
		listings.GET("/:listing_id/availability", availabilityHandler.GetAvailability)
		listings.GET("/:listing_id/blocked-ranges", availabilityHandler.ListBlockedRanges)
		listings.POST("/:listing_id/blocked-ranges", middlewares.RequireRole(resolveRole, RoleAdmin, RoleVendor), availabilityHandler.CreateBlockedRange)
	}

	vendors := rg.Group(PathVendors)
	{
		vendors.GET("/:vendor_id/bookings", middlewares.RequireRole(resolveRole, RoleAdmin, RoleVendor), bookingHandler.ListVendorBookings)
	}

	// The webhook route deliberately skips body-parsing middleware: the
	// reconciler verifies the signature against the raw bytes.
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payments", webhookHandler.HandleProcessorEvent)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
