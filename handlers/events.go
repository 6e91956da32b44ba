package handlers

import (
	"errors"
	"net/http"
	"strings"

	"guestevents/models"
	"guestevents/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler serves the catalog endpoints. Both reply inside a Data envelope.
type EventHandler struct {
	Service catalog.CatalogService
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc catalog.CatalogService) *EventHandler {
	return &EventHandler{Service: svc}
}

// UpcomingEventsHandler lists events starting today or later.
func (h *EventHandler) UpcomingEventsHandler(c *gin.Context) {
	logger := getLogger(c)

	events, err := h.Service.Upcoming(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list upcoming events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}
	c.JSON(http.StatusOK, models.Envelope[models.EventSummary]{Data: events})
}

// EventDetailHandler returns the record for the requested EventUUID.
func (h *EventHandler) EventDetailHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.EventDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event detail request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	id := strings.TrimSpace(req.EventUUID)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "EventUUID is required"})
		return
	}

	detail, err := h.Service.Detail(c.Request.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrEventNotFound):
		logger.Info("Event not found", zap.String("id", id))
		c.JSON(http.StatusNotFound, models.Envelope[models.EventDetail]{Data: []models.EventDetail{}})
		return
	case err != nil:
		logger.Error("Failed to load event", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}
	c.JSON(http.StatusOK, models.Envelope[models.EventDetail]{Data: []models.EventDetail{*detail}})
}
