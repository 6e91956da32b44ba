// models/session.go
package models

// Session is the client's sign-in progress. It lives for the process
// lifetime; there is no logout.
type Session struct {
	MobileNumber  string
	OTPCode       string
	OTPSent       bool
	Authenticated bool
	ErrorMessage  string
}
