package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers registered by routes.
type HandlerBundle struct {
	// OTP endpoints
	SendOTPHandler   gin.HandlerFunc
	VerifyOTPHandler gin.HandlerFunc

	// Catalog endpoints
	UpcomingEventsHandler gin.HandlerFunc
	EventDetailHandler    gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
