package session

import "guestevents/models"

// Screen identifies which of the four screens the state selects.
type Screen int

const (
	ScreenNoOTP Screen = iota
	ScreenOTPSent
	ScreenList
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenNoOTP:
		return "no-otp"
	case ScreenOTPSent:
		return "otp-sent"
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	}
	return "unknown"
}

// State is the complete client state. Values are treated as immutable:
// Reduce returns a new State and never mutates its argument's slices.
type State struct {
	Session  models.Session
	Events   []models.EventSummary
	Selected *models.EventDetail

	// Latest request tokens per fetch kind. Results carrying an older
	// token are stale and discarded.
	listToken   uint64
	detailToken uint64
	nextToken   uint64
}

// NewState returns the start-of-process state.
func NewState() State {
	return State{}
}

// Screen derives the screen tag. SelectedEvent is the only discriminator
// between list and detail once authenticated.
func (s State) Screen() Screen {
	switch {
	case !s.Session.Authenticated && !s.Session.OTPSent:
		return ScreenNoOTP
	case !s.Session.Authenticated:
		return ScreenOTPSent
	case s.Selected != nil:
		return ScreenDetail
	default:
		return ScreenList
	}
}

// issue hands out the next request token.
func (s *State) issue() uint64 {
	s.nextToken++
	return s.nextToken
}
