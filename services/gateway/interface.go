package gateway

import (
	"context"

	"guestevents/models"
)

// Gateway is the remote authentication and event catalog service.
// Every call is a single round trip with no retry and no caching.
type Gateway interface {
	RequestOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, code string) error
	ListUpcomingEvents(ctx context.Context) ([]models.EventSummary, error)
	FetchEventDetail(ctx context.Context, eventID string) (*models.EventDetail, error)
}

// Endpoint paths on the catalog host.
const (
	PathSendOTP     = "/api/send-otp"
	PathVerifyOTP   = "/api/Verify-Otp"
	PathUpcoming    = "/api/Upcomingevent"
	PathEventDetail = "/api/eventdetailsbyuuid"
)
