package otp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"guestevents/utils"

	"github.com/go-redis/redis/v8"
)

func otpKey(mobile string) string {
	return utils.OTPCachePrefix + mobile
}

func attemptsKey(mobile string) string {
	return utils.OTPCachePrefix + "attempts:" + mobile
}

// RedisOTPStore keeps code hashes in Redis with an expiry.
type RedisOTPStore struct {
	Client *redis.Client
}

// NewRedisOTPStore returns an OTPStore backed by client.
func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{Client: client}
}

func (s *RedisOTPStore) Save(ctx context.Context, mobile string, hash []byte, ttl time.Duration) error {
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, otpKey(mobile), hash, ttl)
		pipe.Del(ctx, attemptsKey(mobile))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Get(ctx context.Context, mobile string) ([]byte, error) {
	hash, err := s.Client.Get(ctx, otpKey(mobile)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP: %w", err)
	}
	return hash, nil
}

func (s *RedisOTPStore) RecordFailure(ctx context.Context, mobile string, ttl time.Duration) (int, error) {
	var incr *redis.IntCmd
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, attemptsKey(mobile))
		pipe.Expire(ctx, attemptsKey(mobile), ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count OTP attempt: %w", err)
	}
	return int(incr.Val()), nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, mobile string) error {
	if err := s.Client.Del(ctx, otpKey(mobile), attemptsKey(mobile)).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

type memoryEntry struct {
	hash      []byte
	expiresAt time.Time
	failures  int
}

// MemoryOTPStore keeps code hashes in process memory.
type MemoryOTPStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryOTPStore returns an empty in-memory OTPStore.
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryOTPStore) Save(_ context.Context, mobile string, hash []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[otpKey(mobile)] = memoryEntry{hash: hash, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryOTPStore) Get(_ context.Context, mobile string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := otpKey(mobile)
	entry, ok := s.entries[key]
	if !ok {
		return nil, ErrCodeNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, key)
		return nil, ErrCodeNotFound
	}
	return entry.hash, nil
}

func (s *MemoryOTPStore) RecordFailure(_ context.Context, mobile string, _ time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := otpKey(mobile)
	entry, ok := s.entries[key]
	if !ok {
		return 0, ErrCodeNotFound
	}
	entry.failures++
	s.entries[key] = entry
	return entry.failures, nil
}

func (s *MemoryOTPStore) Delete(_ context.Context, mobile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, otpKey(mobile))
	return nil
}
