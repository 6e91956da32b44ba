package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"go.uber.org/zap"
)

// GenerateNumericOTP returns a uniformly random code of length decimal digits.
func GenerateNumericOTP(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid OTP length %d", length)
	}
	digits := make([]byte, length)
	ten := big.NewInt(10)
	for i := range digits {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// SendSMSMessage delivers message to mobile.
// The development server has no SMS provider, so the message is logged.
func SendSMSMessage(mobile, message string) error {
	GetLogger().Info("Sending SMS", zap.String("mobile", MaskMobile(mobile)), zap.String("message", message))
	return nil
}

// MaskMobile hides all but the last four digits of a phone number.
func MaskMobile(mobile string) string {
	if len(mobile) <= 4 {
		return mobile
	}
	masked := make([]byte, len(mobile))
	for i := range masked {
		if i < len(mobile)-4 {
			masked[i] = '*'
		} else {
			masked[i] = mobile[i]
		}
	}
	return string(masked)
}
