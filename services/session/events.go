package session

import "guestevents/models"

// Event is an input to Reduce: user actions and remote call outcomes.
type Event interface {
	isEvent()
}

// User actions.
type (
	MobileChanged    struct{ Value string }
	CodeChanged      struct{ Value string }
	SendOTPPressed   struct{}
	VerifyOTPPressed struct{}
	EventSelected    struct{ EventID string }
	BackPressed      struct{}
	MapPressed       struct{}
)

// Remote call outcomes.
type (
	OTPRequested struct{ Err error }
	OTPVerified  struct{ Err error }
	EventsLoaded struct {
		Token  uint64
		Events []models.EventSummary
		Err    error
	}
	DetailLoaded struct {
		Token   uint64
		EventID string
		Detail  *models.EventDetail
		Err     error
	}
)

func (MobileChanged) isEvent()    {}
func (CodeChanged) isEvent()      {}
func (SendOTPPressed) isEvent()   {}
func (VerifyOTPPressed) isEvent() {}
func (EventSelected) isEvent()    {}
func (BackPressed) isEvent()      {}
func (MapPressed) isEvent()       {}
func (OTPRequested) isEvent()     {}
func (OTPVerified) isEvent()      {}
func (EventsLoaded) isEvent()     {}
func (DetailLoaded) isEvent()     {}
