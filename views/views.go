// Package views projects session state onto the four client screens.
//
// Select is pure: it reads a session.State and returns a Screen value with
// every display fallback already applied, so renderers never branch on
// missing data.
package views

import (
	"time"

	"guestevents/models"
	"guestevents/services/session"
)

// Display fallbacks for missing event detail fields.
const (
	NoDescription    = "No description available."
	NoName           = "No name available."
	PlaceholderImage = "https://via.placeholder.com/150"
	NoVenue          = "Venue not provided"
	NoCity           = "City not provided"
	NoDates          = "Dates not available"
	NoMapLink        = "#"
)

// DefaultDateLayout renders dates the way an en-US locale short date does.
const DefaultDateLayout = "1/2/2006"

// Screen is one of SignIn, List or Detail.
type Screen interface {
	Kind() session.Screen
}

// SignInStep selects the input shown on the sign-in screen.
type SignInStep int

const (
	StepMobile SignInStep = iota
	StepCode
)

// SignIn covers both unauthenticated states.
type SignIn struct {
	Step   SignInStep
	Mobile string
	Code   string
	Error  string
	// CanSubmit is false while the active input is empty.
	CanSubmit bool
}

// Row is one entry of the event list.
type Row struct {
	ID        string
	Name      string
	Organizer string
	City      string
}

// List is the upcoming event list in server order.
type List struct {
	Rows []Row
}

// Detail is a fully populated event detail screen.
type Detail struct {
	Name        string
	Description string
	ImageURL    string
	Venue       string
	Dates       string
	City        string
	MapURL      string
	// HasMap is false when MapURL is the inert placeholder.
	HasMap bool
}

func (s SignIn) Kind() session.Screen {
	if s.Step == StepCode {
		return session.ScreenOTPSent
	}
	return session.ScreenNoOTP
}

func (List) Kind() session.Screen   { return session.ScreenList }
func (Detail) Kind() session.Screen { return session.ScreenDetail }

// Selector renders states with a fixed date layout.
type Selector struct {
	DateLayout string
	// Location, if set, converts zoned dates before formatting. Floating
	// dates are shown as written.
	Location *time.Location
}

// Select projects st using the default date layout.
func Select(st session.State) Screen {
	return Selector{}.Select(st)
}

// Select projects st onto its screen.
func (sel Selector) Select(st session.State) Screen {
	switch st.Screen() {
	case session.ScreenNoOTP:
		return SignIn{
			Step:      StepMobile,
			Mobile:    st.Session.MobileNumber,
			Error:     st.Session.ErrorMessage,
			CanSubmit: st.Session.MobileNumber != "",
		}
	case session.ScreenOTPSent:
		return SignIn{
			Step:      StepCode,
			Mobile:    st.Session.MobileNumber,
			Code:      st.Session.OTPCode,
			Error:     st.Session.ErrorMessage,
			CanSubmit: st.Session.OTPCode != "",
		}
	case session.ScreenDetail:
		return sel.detail(*st.Selected)
	default:
		return list(st.Events)
	}
}

func list(events []models.EventSummary) List {
	rows := make([]Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, Row{ID: e.ID, Name: e.Name, Organizer: e.Organizer, City: e.City})
	}
	return List{Rows: rows}
}

func (sel Selector) detail(ev models.EventDetail) Detail {
	d := Detail{
		Name:        orDefault(ev.Name, NoName),
		Description: orDefault(ev.Description, NoDescription),
		ImageURL:    orDefault(ev.ImageURL, PlaceholderImage),
		Venue:       orDefault(ev.Venue, NoVenue),
		City:        orDefault(ev.City, NoCity),
		MapURL:      orDefault(ev.MapURL, NoMapLink),
		HasMap:      ev.MapURL != "",
		Dates:       NoDates,
	}
	if ev.StartDate.Valid() && ev.EndDate.Valid() {
		layout := sel.DateLayout
		if layout == "" {
			layout = DefaultDateLayout
		}
		start, end := ev.StartDate.In(sel.Location), ev.EndDate.In(sel.Location)
		d.Dates = start.Format(layout) + " - " + end.Format(layout)
	}
	return d
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
