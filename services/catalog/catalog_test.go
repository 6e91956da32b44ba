package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	eventRepo "guestevents/database/repository/event"
	"guestevents/models"
)

func TestUpcomingIncludesToday(t *testing.T) {
	ctx := context.Background()
	repo := eventRepo.NewMemoryEventRepo()
	now := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	morning := models.NewEventTime(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
	yesterday := models.NewEventTime(time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC))

	for _, e := range []models.Event{
		{EventDetail: models.EventDetail{ID: "today", Name: "Brunch", City: "Pune", StartDate: morning}, Organizer: "Cafe"},
		{EventDetail: models.EventDetail{ID: "gone", Name: "Old", StartDate: yesterday}},
	} {
		if err := repo.Create(ctx, &e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	svc := &DefaultCatalogService{Repo: repo, Now: func() time.Time { return now }}
	got, err := svc.Upcoming(ctx)
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	want := models.EventSummary{ID: "today", Name: "Brunch", Organizer: "Cafe", City: "Pune"}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("Upcoming = %+v", got)
	}
}

func TestDetailNotFound(t *testing.T) {
	svc := &DefaultCatalogService{Repo: eventRepo.NewMemoryEventRepo()}
	if _, err := svc.Detail(context.Background(), "nope"); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("err = %v", err)
	}
}
