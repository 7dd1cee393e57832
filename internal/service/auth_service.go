package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainsped/chain-backend/internal/config"
	"github.com/chainsped/chain-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("session is no longer active")
)

// Claims extends JWT standard claims with app-specific fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID string      `json:"user_id"`
	Level  model.Level `json:"level"`
}

// SessionStore keeps the active session token id (jti) per user. The Redis
// implementation is used in production; tests inject an in-memory fake.
type SessionStore interface {
	Set(ctx context.Context, key, jti string, ttl time.Duration) error
	// Get returns the stored jti or "" when no session exists.
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

type redisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore wraps a Redis client as a SessionStore.
func NewRedisSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Set(ctx context.Context, key, jti string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, jti, ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *redisSessionStore) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// AuthService handles password hashing, JWT issuance and session management.
type AuthService struct {
	cfg      *config.Config
	sessions SessionStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, sessions SessionStore) *AuthService {
	return &AuthService{cfg: cfg, sessions: sessions}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a JWT for a user and registers the session.
// A new login replaces any existing session for the same user
// (last-login-wins), invalidating older tokens.
func (s *AuthService) GenerateToken(ctx context.Context, user *model.User) (string, error) {
	jti := uuid.New().String()
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID: user.ID,
		Level:  user.Level,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	key := config.CacheKey.UserSessionKey(user.ID)
	if err := s.sessions.Set(ctx, key, jti, s.cfg.JWTExpiry); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return signed, nil
}

// ValidateToken parses and validates a JWT, returning the claims.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// ValidateSession checks that the token's jti is still the active session
// for the user. Superseded tokens (a newer login or a logout) are rejected.
func (s *AuthService) ValidateSession(ctx context.Context, userID, jti string) error {
	stored, err := s.sessions.Get(ctx, config.CacheKey.UserSessionKey(userID))
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if stored == "" || stored != jti {
		return ErrSessionInvalid
	}
	return nil
}

// ResetSession removes the active session for a user.
func (s *AuthService) ResetSession(ctx context.Context, userID string) error {
	return s.sessions.Del(ctx, config.CacheKey.UserSessionKey(userID))
}
