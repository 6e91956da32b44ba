package otp

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMobileRequired is returned when no mobile number was supplied.
	ErrMobileRequired = errors.New("mobile number is required")
	// ErrInvalidOTP is returned for a wrong, expired or unknown code.
	ErrInvalidOTP = errors.New("invalid or expired OTP")
	// ErrCodeNotFound is returned by an OTPStore when no code is pending.
	ErrCodeNotFound = errors.New("otp not found")
)

// OTPService issues and checks one-time sign-in codes.
type OTPService interface {
	// Send generates a code for mobile, stores its hash and delivers it.
	Send(ctx context.Context, mobile string) error
	// Verify checks code against the pending one and returns a signed token.
	Verify(ctx context.Context, mobile, code string) (string, error)
}

// OTPStore keeps pending code hashes keyed by mobile number.
type OTPStore interface {
	// Save stores hash for mobile and resets its failure count.
	Save(ctx context.Context, mobile string, hash []byte, ttl time.Duration) error
	Get(ctx context.Context, mobile string) ([]byte, error)
	// RecordFailure counts a wrong guess and returns the running total.
	RecordFailure(ctx context.Context, mobile string, ttl time.Duration) (int, error)
	// Delete removes the code and its failure count.
	Delete(ctx context.Context, mobile string) error
}

// DefaultMaxAttempts is used when DefaultOTPService.MaxAttempts is unset.
const DefaultMaxAttempts = 5

// DefaultOTPService is the production implementation.
type DefaultOTPService struct {
	Store  OTPStore
	Length int
	TTL    time.Duration
	// MaxAttempts wrong guesses invalidate the pending code.
	MaxAttempts int
	TokenTTL    time.Duration
	Generate    func(length int) (string, error)
	Deliver     func(mobile, message string) error
	SignToken   func(mobile string, ttl time.Duration) (string, error)
}
