package session

import (
	"context"

	"guestevents/services/gateway"
)

// Perform runs a gateway effect and returns its outcome as an Event.
// Effects that do not touch the gateway return nil.
func Perform(ctx context.Context, gw gateway.Gateway, eff Effect) Event {
	switch eff := eff.(type) {
	case RequestOTPEffect:
		return OTPRequested{Err: gw.RequestOTP(ctx, eff.Mobile)}
	case VerifyOTPEffect:
		return OTPVerified{Err: gw.VerifyOTP(ctx, eff.Mobile, eff.Code)}
	case ListEventsEffect:
		events, err := gw.ListUpcomingEvents(ctx)
		return EventsLoaded{Token: eff.Token, Events: events, Err: err}
	case FetchDetailEffect:
		detail, err := gw.FetchEventDetail(ctx, eff.EventID)
		return DetailLoaded{Token: eff.Token, EventID: eff.EventID, Detail: detail, Err: err}
	}
	return nil
}
