package session

import (
	"strings"

	"guestevents/models"
)

// User-facing messages for the two visible failures.
const (
	MsgSendOTPFailed   = "Error sending OTP. Please try again later."
	MsgVerifyOTPFailed = "Invalid OTP. Please try again."
)

// Reduce applies ev to s and returns the next state plus the effects the
// runtime must perform. It is pure: s is not modified.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case MobileChanged:
		if s.Screen() == ScreenNoOTP {
			s.Session.MobileNumber = ev.Value
		}
		return s, nil

	case CodeChanged:
		if s.Screen() == ScreenOTPSent {
			s.Session.OTPCode = ev.Value
		}
		return s, nil

	case SendOTPPressed:
		if s.Screen() != ScreenNoOTP || strings.TrimSpace(s.Session.MobileNumber) == "" {
			return s, nil
		}
		s.Session.ErrorMessage = ""
		return s, []Effect{RequestOTPEffect{Mobile: s.Session.MobileNumber}}

	case OTPRequested:
		if s.Session.Authenticated {
			return s, nil
		}
		if ev.Err != nil {
			s.Session.ErrorMessage = MsgSendOTPFailed
			return s, nil
		}
		s.Session.OTPSent = true
		return s, nil

	case VerifyOTPPressed:
		if s.Screen() != ScreenOTPSent || s.Session.OTPCode == "" {
			return s, nil
		}
		s.Session.ErrorMessage = ""
		return s, []Effect{VerifyOTPEffect{Mobile: s.Session.MobileNumber, Code: s.Session.OTPCode}}

	case OTPVerified:
		if s.Screen() != ScreenOTPSent {
			return s, nil
		}
		if ev.Err != nil {
			s.Session.ErrorMessage = MsgVerifyOTPFailed
			return s, nil
		}
		s.Session.Authenticated = true
		s.listToken = s.issue()
		return s, []Effect{ListEventsEffect{Token: s.listToken}}

	case EventsLoaded:
		if !s.Session.Authenticated {
			return s, nil
		}
		if ev.Token != s.listToken {
			return s, []Effect{report(DiagnosticStale, "", ev.Token, ev.Err)}
		}
		if ev.Err != nil {
			return s, []Effect{report(DiagnosticListUnavailable, "", ev.Token, ev.Err)}
		}
		s.Events = append([]models.EventSummary(nil), ev.Events...)
		return s, nil

	case EventSelected:
		if s.Screen() != ScreenList || ev.EventID == "" {
			return s, nil
		}
		s.detailToken = s.issue()
		return s, []Effect{FetchDetailEffect{Token: s.detailToken, EventID: ev.EventID}}

	case DetailLoaded:
		if ev.Token != s.detailToken || s.Screen() != ScreenList {
			return s, []Effect{report(DiagnosticStale, ev.EventID, ev.Token, ev.Err)}
		}
		if ev.Err != nil || ev.Detail == nil {
			return s, []Effect{report(DiagnosticDetailUnavailable, ev.EventID, ev.Token, ev.Err)}
		}
		detail := *ev.Detail
		s.Selected = &detail
		return s, nil

	case BackPressed:
		if s.Screen() != ScreenDetail {
			return s, nil
		}
		s.Selected = nil
		// Any detail fetch still in flight belongs to the screen we left.
		s.detailToken = s.issue()
		return s, nil

	case MapPressed:
		if s.Screen() != ScreenDetail || s.Selected.MapURL == "" {
			return s, nil
		}
		return s, []Effect{OpenURLEffect{URL: s.Selected.MapURL}}
	}
	return s, nil
}

func report(kind DiagnosticKind, eventID string, token uint64, err error) Effect {
	return ReportEffect{Diagnostic: Diagnostic{Kind: kind, EventID: eventID, Token: token, Err: err}}
}
