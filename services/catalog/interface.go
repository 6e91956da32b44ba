package catalog

import (
	"context"
	"errors"
	"time"

	eventRepo "guestevents/database/repository/event"
	"guestevents/models"
)

// ErrEventNotFound is returned when the requested event does not exist.
var ErrEventNotFound = errors.New("event not found")

// CatalogService answers the event listing and detail queries.
type CatalogService interface {
	// Upcoming lists events starting today or later.
	Upcoming(ctx context.Context) ([]models.EventSummary, error)
	// Detail returns the full record for id.
	Detail(ctx context.Context, id string) (*models.EventDetail, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo eventRepo.EventRepository
	// Now defaults to time.Now.
	Now func() time.Time
}
