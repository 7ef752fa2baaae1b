package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// BridgeSubject is the subject of every token minted for the UI shell.
const BridgeSubject = "shell"

var ErrMissingSecret = errors.New("bridge secret is empty")

// TokenService mints the bearer token the UI shell presents to the bridge.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.BridgeSecret),
		ttl:    cfg.BridgeTokenTTL,
		now:    time.Now,
	}
}

// Issue returns a signed HS256 token and its expiry.
func (s *TokenService) Issue() (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		"sub":   BridgeSubject,
		"scope": "bridge",
		"jti":   uuid.New().String(),
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign bridge token: %w", err)
	}
	return signed, expiresAt, nil
}

// WriteTokenFile stores the token where the shell can read it, owner-only.
func WriteTokenFile(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return os.Chmod(path, 0o600)
}

// GenerateSecret returns a random hex secret for runs without BRIDGE_SECRET.
func GenerateSecret() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
