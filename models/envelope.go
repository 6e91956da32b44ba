// models/envelope.go
package models

// Envelope wraps every catalog response payload under "Data".
type Envelope[T any] struct {
	Data []T `json:"Data"`
}

// SendOTPRequest is the body of POST /api/send-otp.
type SendOTPRequest struct {
	Mobile string `json:"mobile"`
}

// VerifyOTPRequest is the body of POST /api/Verify-Otp.
type VerifyOTPRequest struct {
	Mobile string `json:"mobile"`
	OTP    string `json:"Otp"`
}

// EventDetailRequest is the body of POST /api/eventdetailsbyuuid.
type EventDetailRequest struct {
	EventUUID string `json:"EventUUID"`
}

// VerifyOTPResponse is returned by the development server. The client ignores it.
type VerifyOTPResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}
