// File: utils/constants.go
package utils

import "time"

// OTPCachePrefix is the prefix used for Redis keys holding pending OTP hashes.
const OTPCachePrefix = "otp:"

// HealthCheckInterval is how often backing services are pinged for /health.
const HealthCheckInterval = time.Minute
