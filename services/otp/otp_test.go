package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"guestevents/utils"
)

type outbox struct {
	messages map[string]string
}

func (o *outbox) deliver(mobile, message string) error {
	if o.messages == nil {
		o.messages = make(map[string]string)
	}
	o.messages[mobile] = message
	return nil
}

func newService(code string) (*DefaultOTPService, *outbox) {
	box := &outbox{}
	return &DefaultOTPService{
		Store:    NewMemoryOTPStore(),
		Length:   4,
		TTL:      5 * time.Minute,
		Generate: func(int) (string, error) { return code, nil },
		Deliver:  box.deliver,
	}, box
}

func TestSendAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, box := newService("4821")

	if err := svc.Send(ctx, "9999999999"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if box.messages["9999999999"] == "" {
		t.Fatalf("code not delivered")
	}

	if _, err := svc.Verify(ctx, "9999999999", "0000"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("wrong code err = %v", err)
	}

	token, err := svc.Verify(ctx, "9999999999", "4821")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	sub, err := utils.ExtractSubjectFromToken(token)
	if err != nil || sub != "9999999999" {
		t.Fatalf("token subject = %q, %v", sub, err)
	}

	// Codes are single use.
	if _, err := svc.Verify(ctx, "9999999999", "4821"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("reused code err = %v", err)
	}
}

func TestTooManyWrongCodesDiscardsOTP(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService("4821")
	svc.MaxAttempts = 3

	if err := svc.Send(ctx, "9999999999"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := svc.Verify(ctx, "9999999999", "0000"); !errors.Is(err, ErrInvalidOTP) {
			t.Fatalf("guess %d err = %v", i, err)
		}
	}
	if _, err := svc.Verify(ctx, "9999999999", "4821"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("correct code accepted after the attempt limit: %v", err)
	}

	// A fresh code starts a fresh count.
	if err := svc.Send(ctx, "9999999999"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if _, err := svc.Verify(ctx, "9999999999", "0000"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("wrong code err = %v", err)
	}
	if _, err := svc.Verify(ctx, "9999999999", "4821"); err != nil {
		t.Fatalf("Verify after resend: %v", err)
	}
}

func TestSendRequiresMobile(t *testing.T) {
	svc, _ := newService("1234")
	if err := svc.Send(context.Background(), "  "); !errors.Is(err, ErrMobileRequired) {
		t.Fatalf("err = %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOTPStore()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if err := store.Save(ctx, "1", []byte("h"), time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := store.Get(ctx, "1"); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}
	now = now.Add(time.Minute)
	if _, err := store.Get(ctx, "1"); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("Get after expiry err = %v", err)
	}
}
