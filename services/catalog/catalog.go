package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	eventRepo "guestevents/database/repository/event"
	"guestevents/models"
)

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *DefaultCatalogService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultCatalogService) Upcoming(ctx context.Context) ([]models.EventSummary, error) {
	events, err := s.Repo.Upcoming(ctx, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	summaries := make([]models.EventSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, e.Summary())
	}
	return summaries, nil
}

func (s *DefaultCatalogService) Detail(ctx context.Context, id string) (*models.EventDetail, error) {
	event, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, eventRepo.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}
	detail := event.EventDetail
	return &detail, nil
}
