package eventRepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"guestevents/models"
)

func at(s string) models.EventTime {
	t, _ := models.ParseEventTime(s)
	return t
}

func TestMemoryUpcomingOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepo()
	for _, e := range []models.Event{
		{EventDetail: models.EventDetail{ID: "3", Name: "Beta", StartDate: at("2026-05-02")}},
		{EventDetail: models.EventDetail{ID: "2", Name: "Alpha", StartDate: at("2026-05-02")}},
		{EventDetail: models.EventDetail{ID: "1", Name: "Zulu", StartDate: at("2026-05-01")}},
		{EventDetail: models.EventDetail{ID: "0", Name: "Past", StartDate: at("2026-04-01")}},
		{EventDetail: models.EventDetail{ID: "x", Name: "Undated"}},
	} {
		if err := repo.Create(ctx, &e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.Upcoming(ctx, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Upcoming: %v", err)
	}
	var ids []string
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	want := []string{"1", "2", "3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestMemoryGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepo()
	if err := repo.Create(ctx, &models.Event{EventDetail: models.EventDetail{ID: "a", Name: "A"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, &models.Event{EventDetail: models.EventDetail{ID: "a"}}); err == nil {
		t.Fatalf("duplicate id accepted")
	}

	e, err := repo.GetByID(ctx, "a")
	if err != nil || e.Name != "A" {
		t.Fatalf("GetByID = %+v, %v", e, err)
	}
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryEventRepo()
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	n, err := Seed(ctx, repo, now)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != len(SampleEvents(now)) {
		t.Fatalf("seeded %d", n)
	}
	again, err := Seed(ctx, repo, now)
	if err != nil || again != 0 {
		t.Fatalf("second Seed = %d, %v", again, err)
	}

	upcoming, _ := repo.Upcoming(ctx, now.Truncate(24*time.Hour))
	if len(upcoming) != n-1 {
		t.Fatalf("upcoming = %d, want the past event dropped", len(upcoming))
	}
}
