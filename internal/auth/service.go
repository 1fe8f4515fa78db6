package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"piccante-system/config"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute

	attemptKeyPrefix = "admin:login:attempts:"
)

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrLockedOut     = errors.New("too many failed attempts, try again later")
)

// Service implements the shared-password admin login. Failed attempts are
// counted per client in redis; five failures lock the client out for
// fifteen minutes.
type Service struct {
	password string
	secret   []byte
	tokenTTL time.Duration
	redis    *redis.Client
}

func NewService(cfg config.AuthConfig, redisClient *redis.Client) *Service {
	return &Service{
		password: cfg.AdminPassword,
		secret:   []byte(cfg.JwtSecret),
		tokenTTL: time.Duration(cfg.TokenTTLHours) * time.Hour,
		redis:    redisClient,
	}
}

// Login checks the shared password and returns a session token. The client
// key is whatever identifies the caller, normally its IP.
func (s *Service) Login(ctx context.Context, clientKey, password string) (string, time.Time, error) {
	key := attemptKeyPrefix + clientKey

	if s.redis != nil {
		attempts, err := s.redis.Get(ctx, key).Int()
		if err == nil && attempts >= maxLoginAttempts {
			return "", time.Time{}, ErrLockedOut
		}
	}

	if s.password == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		s.recordFailure(ctx, key)
		return "", time.Time{}, ErrWrongPassword
	}

	if s.redis != nil {
		_ = s.redis.Del(ctx, key).Err()
	}

	token, exp, err := GenerateToken(s.secret, s.tokenTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, exp, nil
}

// Verify validates a session token.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	return ParseToken(s.secret, tokenStr)
}

func (s *Service) recordFailure(ctx context.Context, key string) {
	if s.redis == nil {
		return
	}
	attempts, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if attempts == 1 {
		_ = s.redis.Expire(ctx, key, lockoutDuration).Err()
	}
}
