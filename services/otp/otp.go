package otp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"guestevents/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultOTPService) Send(ctx context.Context, mobile string) error {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return ErrMobileRequired
	}

	generate := s.Generate
	if generate == nil {
		generate = utils.GenerateNumericOTP
	}
	code, err := generate(s.Length)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}
	if err := s.Store.Save(ctx, mobile, hash, s.TTL); err != nil {
		return err
	}

	deliver := s.Deliver
	if deliver == nil {
		deliver = utils.SendSMSMessage
	}
	message := fmt.Sprintf("Your sign-in code is %s. It expires in %s.", code, s.TTL)
	if err := deliver(mobile, message); err != nil {
		return fmt.Errorf("failed to deliver OTP: %w", err)
	}
	utils.GetLogger().Info("OTP issued", zap.String("mobile", utils.MaskMobile(mobile)))
	return nil
}

func (s *DefaultOTPService) Verify(ctx context.Context, mobile, code string) (string, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return "", ErrMobileRequired
	}

	hash, err := s.Store.Get(ctx, mobile)
	if errors.Is(err, ErrCodeNotFound) {
		return "", ErrInvalidOTP
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(strings.TrimSpace(code))); err != nil {
		s.recordFailure(ctx, mobile)
		return "", ErrInvalidOTP
	}
	if err := s.Store.Delete(ctx, mobile); err != nil {
		utils.GetLogger().Warn("Failed to clear used OTP", zap.Error(err))
	}

	sign := s.SignToken
	if sign == nil {
		sign = utils.GenerateToken
	}
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := sign(mobile, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// recordFailure counts a wrong guess and discards the code once the limit is
// reached, so the holder must request a new one.
func (s *DefaultOTPService) recordFailure(ctx context.Context, mobile string) {
	logger := utils.GetLogger()
	failures, err := s.Store.RecordFailure(ctx, mobile, s.TTL)
	if err != nil {
		logger.Warn("Failed to record OTP attempt", zap.Error(err))
		return
	}
	limit := s.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	if failures < limit {
		return
	}
	if err := s.Store.Delete(ctx, mobile); err != nil {
		logger.Warn("Failed to discard OTP after too many attempts", zap.Error(err))
		return
	}
	logger.Warn("OTP discarded after too many attempts",
		zap.String("mobile", utils.MaskMobile(mobile)),
		zap.Int("attempts", failures),
	)
}
