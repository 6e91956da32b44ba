package eventRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"guestevents/models"
)

// MemoryEventRepo implements EventRepository in process memory.
type MemoryEventRepo struct {
	mu     sync.RWMutex
	events map[string]models.Event
}

// NewMemoryEventRepo creates an empty in-memory EventRepository.
func NewMemoryEventRepo() *MemoryEventRepo {
	return &MemoryEventRepo{events: make(map[string]models.Event)}
}

func (r *MemoryEventRepo) Upcoming(_ context.Context, from time.Time) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := []models.Event{}
	for _, e := range r.events {
		if e.StartDate.Valid() && !e.StartDate.Before(from) {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.StartDate.Equal(b.StartDate.Time) {
			return a.StartDate.Before(b.StartDate.Time)
		}
		return a.Name < b.Name
	})
	return events, nil
}

func (r *MemoryEventRepo) GetByID(_ context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (r *MemoryEventRepo) Create(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.events[event.ID]; exists {
		return fmt.Errorf("failed to create event: duplicate EventUUID %s", event.ID)
	}
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryEventRepo) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.events)), nil
}
