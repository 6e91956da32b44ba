package eventRepo

import (
	"context"
	"errors"
	"time"

	"guestevents/models"
)

// ErrNotFound is returned when no event carries the requested id.
var ErrNotFound = errors.New("event not found")

// EventRepository defines methods for event data access.
type EventRepository interface {
	// Upcoming returns events starting at or after from, ordered by start
	// date and then name.
	Upcoming(ctx context.Context, from time.Time) ([]models.Event, error)
	// GetByID retrieves an event by its EventUUID.
	GetByID(ctx context.Context, id string) (*models.Event, error)
	// Create inserts a new event.
	Create(ctx context.Context, event *models.Event) error
	// Count returns the number of stored events.
	Count(ctx context.Context) (int64, error)
}
