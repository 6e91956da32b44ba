package eventRepo

import (
	"context"
	"fmt"
	"time"

	"guestevents/models"

	"github.com/google/uuid"
)

// SampleEvents returns a small catalog anchored at now. One past event is
// included so the upcoming filter has something to drop, and one record
// leaves most optional fields empty.
func SampleEvents(now time.Time) []models.Event {
	day := func(offset int, hour int) models.EventTime {
		d := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
		return models.NewEventTime(d.AddDate(0, 0, offset))
	}
	event := func(name, organizer, city string, detail models.EventDetail) models.Event {
		detail.ID = uuid.NewString()
		detail.Name = name
		detail.City = city
		return models.Event{EventDetail: detail, Organizer: organizer, CreatedAt: now}
	}

	return []models.Event{
		event("Riverside Jazz Night", "Blue Note Collective", "Pune", models.EventDetail{
			Description: "An evening of live jazz by the river.",
			ImageURL:    "https://picsum.photos/seed/jazz/600/400",
			Venue:       "Riverside Amphitheatre",
			StartDate:   day(3, 18),
			EndDate:     day(3, 23),
			MapURL:      "https://maps.google.com/?q=Riverside+Amphitheatre",
		}),
		event("Startup Founders Meetup", "Founders Guild", "Bengaluru", models.EventDetail{
			Description: "Networking for early-stage founders.",
			Venue:       "Hub 91",
			StartDate:   day(7, 10),
			EndDate:     day(7, 16),
		}),
		event("Winter Food Festival", "City Council", "Mumbai", models.EventDetail{
			Description: "Street food from across the country.",
			ImageURL:    "https://picsum.photos/seed/food/600/400",
			Venue:       "Bandra Grounds",
			StartDate:   day(14, 11),
			EndDate:     day(16, 22),
			MapURL:      "https://maps.google.com/?q=Bandra+Grounds",
		}),
		event("Open Mic", "Local Arts Circle", "Pune", models.EventDetail{
			StartDate: day(1, 19),
		}),
		event("Last Season Expo", "Expo Partners", "Delhi", models.EventDetail{
			Description: "Already over.",
			Venue:       "Pragati Maidan",
			StartDate:   day(-10, 9),
			EndDate:     day(-8, 18),
		}),
	}
}

// Seed inserts the sample events when repo is empty and reports how many
// were inserted.
func Seed(ctx context.Context, repo EventRepository, now time.Time) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	events := SampleEvents(now)
	for i := range events {
		if err := repo.Create(ctx, &events[i]); err != nil {
			return i, fmt.Errorf("failed to seed %q: %w", events[i].Name, err)
		}
	}
	return len(events), nil
}
