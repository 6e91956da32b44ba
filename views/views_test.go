package views

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"guestevents/models"
	"guestevents/services/session"
)

// fakeGateway serves one listing and fixed details.
type fakeGateway struct {
	events  []models.EventSummary
	details map[string]*models.EventDetail
}

func (fakeGateway) RequestOTP(context.Context, string) error        { return nil }
func (fakeGateway) VerifyOTP(context.Context, string, string) error { return nil }
func (g fakeGateway) ListUpcomingEvents(context.Context) ([]models.EventSummary, error) {
	return g.events, nil
}
func (g fakeGateway) FetchEventDetail(_ context.Context, id string) (*models.EventDetail, error) {
	return g.details[id], nil
}

func stateAt(t *testing.T, gw fakeGateway, selectID string) session.State {
	t.Helper()
	c := session.NewController(gw, nil, nil)
	ctx := context.Background()
	c.Dispatch(ctx, session.MobileChanged{Value: "9999999999"})
	c.Dispatch(ctx, session.SendOTPPressed{})
	c.Dispatch(ctx, session.CodeChanged{Value: "1234"})
	c.Dispatch(ctx, session.VerifyOTPPressed{})
	if selectID != "" {
		c.Dispatch(ctx, session.EventSelected{EventID: selectID})
	}
	return c.State()
}

func TestSelectSignInSteps(t *testing.T) {
	st := session.NewState()
	got, ok := Select(st).(SignIn)
	if !ok || got.Step != StepMobile || got.CanSubmit {
		t.Fatalf("initial screen = %#v", Select(st))
	}

	st, _ = session.Reduce(st, session.MobileChanged{Value: "9999999999"})
	st, _ = session.Reduce(st, session.OTPRequested{})
	got = Select(st).(SignIn)
	if got.Step != StepCode || got.Kind() != session.ScreenOTPSent || got.CanSubmit {
		t.Fatalf("after send = %#v", got)
	}

	st, _ = session.Reduce(st, session.CodeChanged{Value: "1234"})
	st, _ = session.Reduce(st, session.OTPVerified{Err: context.Canceled})
	got = Select(st).(SignIn)
	if got.Error != "Invalid OTP. Please try again." || !got.CanSubmit || got.Code != "1234" {
		t.Fatalf("after failed verify = %#v", got)
	}
}

func TestSelectListRows(t *testing.T) {
	gw := fakeGateway{events: []models.EventSummary{
		{ID: "e2", Name: "Zeta", Organizer: "B", City: "Delhi"},
		{ID: "e1", Name: "Gala", Organizer: "A", City: "Pune"},
	}}
	got, ok := Select(stateAt(t, gw, "")).(List)
	if !ok {
		t.Fatalf("screen = %T, want List", Select(stateAt(t, gw, "")))
	}
	want := []Row{
		{ID: "e2", Name: "Zeta", Organizer: "B", City: "Delhi"},
		{ID: "e1", Name: "Gala", Organizer: "A", City: "Pune"},
	}
	if !reflect.DeepEqual(got.Rows, want) {
		t.Fatalf("rows = %+v, want %+v", got.Rows, want)
	}
}

func TestSelectDetailDefaults(t *testing.T) {
	gw := fakeGateway{
		events:  []models.EventSummary{{ID: "e1", Name: "Gala"}},
		details: map[string]*models.EventDetail{"e1": {Name: "Gala", Venue: ""}},
	}
	got, ok := Select(stateAt(t, gw, "e1")).(Detail)
	if !ok {
		t.Fatalf("screen is not Detail")
	}
	want := Detail{
		Name:        "Gala",
		Description: "No description available.",
		ImageURL:    "https://via.placeholder.com/150",
		Venue:       "Venue not provided",
		Dates:       "Dates not available",
		City:        "City not provided",
		MapURL:      "#",
		HasMap:      false,
	}
	if got != want {
		t.Fatalf("detail = %+v\nwant   %+v", got, want)
	}
}

func TestSelectDetailEmptyName(t *testing.T) {
	gw := fakeGateway{
		events:  []models.EventSummary{{ID: "e1"}},
		details: map[string]*models.EventDetail{"e1": {ID: "e1"}},
	}
	got := Select(stateAt(t, gw, "e1")).(Detail)
	if got.Name != "No name available." {
		t.Fatalf("Name = %q", got.Name)
	}
}

func TestSelectDetailDates(t *testing.T) {
	start := models.NewEventTime(time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC))
	end := models.NewEventTime(time.Date(2025, 3, 12, 23, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		detail models.EventDetail
		layout string
		want   string
	}{
		{"both dates", models.EventDetail{StartDate: start, EndDate: end}, "", "3/1/2025 - 3/12/2025"},
		{"custom layout", models.EventDetail{StartDate: start, EndDate: end}, "2006-01-02", "2025-03-01 - 2025-03-12"},
		{"start only", models.EventDetail{StartDate: start}, "", "Dates not available"},
		{"end only", models.EventDetail{EndDate: end}, "", "Dates not available"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := fakeGateway{
				events:  []models.EventSummary{{ID: "e1"}},
				details: map[string]*models.EventDetail{"e1": &tt.detail},
			}
			got := Selector{DateLayout: tt.layout}.Select(stateAt(t, gw, "e1")).(Detail)
			if got.Dates != tt.want {
				t.Fatalf("Dates = %q, want %q", got.Dates, tt.want)
			}
		})
	}
}

func TestSelectDetailDatesWestOfUTC(t *testing.T) {
	newYork := time.FixedZone("EST", -5*60*60)
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"wall clock", "2024-12-25T00:00:00", "2024-12-26T00:00:00", "12/25/2024 - 12/26/2024"},
		{"wall clock with space", "2024-12-25 09:30:00", "2024-12-26 18:00:00", "12/25/2024 - 12/26/2024"},
		{"utc instant", "2024-12-25T00:00:00Z", "2024-12-26T00:00:00Z", "12/24/2024 - 12/25/2024"},
		{"bare date", "2024-12-25", "2024-12-26", "12/24/2024 - 12/25/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var detail models.EventDetail
			body := `{"EventStartDate":"` + tt.start + `","EventEndDate":"` + tt.end + `"}`
			if err := json.Unmarshal([]byte(body), &detail); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			gw := fakeGateway{
				events:  []models.EventSummary{{ID: "e1"}},
				details: map[string]*models.EventDetail{"e1": &detail},
			}
			got := Selector{Location: newYork}.Select(stateAt(t, gw, "e1")).(Detail)
			if got.Dates != tt.want {
				t.Fatalf("Dates = %q, want %q", got.Dates, tt.want)
			}
		})
	}
}

func TestSelectDetailMapLink(t *testing.T) {
	gw := fakeGateway{
		events:  []models.EventSummary{{ID: "e1"}},
		details: map[string]*models.EventDetail{"e1": {MapURL: "https://maps.example/x"}},
	}
	got := Select(stateAt(t, gw, "e1")).(Detail)
	if got.MapURL != "https://maps.example/x" || !got.HasMap {
		t.Fatalf("map = %q %v", got.MapURL, got.HasMap)
	}
}

func TestSelectIsIdempotent(t *testing.T) {
	gw := fakeGateway{
		events:  []models.EventSummary{{ID: "e1", Name: "Gala"}},
		details: map[string]*models.EventDetail{"e1": {Name: "Gala", City: "Pune"}},
	}
	for _, id := range []string{"", "e1"} {
		st := stateAt(t, gw, id)
		first, second := Select(st), Select(st)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("Select not idempotent for %q: %#v vs %#v", id, first, second)
		}
	}
}
