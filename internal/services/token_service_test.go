package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Gathaus/WellnesAiApp-sub000/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueSignsHS256(t *testing.T) {
	svc := NewTokenService(&config.Config{BridgeSecret: "test-secret", BridgeTokenTTL: time.Hour})
	fixed := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	signed, expiresAt, err := svc.Issue()
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), expiresAt)

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(func() time.Time { return fixed.Add(time.Minute) }))
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, BridgeSubject, claims["sub"])
	assert.Equal(t, "bridge", claims["scope"])
	assert.NotEmpty(t, claims["jti"])
}

func TestTokenService_RejectsEmptySecret(t *testing.T) {
	_, _, err := NewTokenService(&config.Config{BridgeTokenTTL: time.Hour}).Issue()
	require.ErrorIs(t, err, ErrMissingSecret)
}

func TestWriteTokenFile_OwnerOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bridge.token")

	require.NoError(t, WriteTokenFile(path, "abc.def.ghi"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", strings.TrimSpace(string(content)))
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	require.NoError(t, err)
	b, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
