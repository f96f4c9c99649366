package auth

import (
	"testing"
	"time"

	"grainauth/config"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: 30 * time.Minute, Issuer: "grainauth-test"},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	fixed := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	user := &entity.User{ID: 42, Username: "alice"}
	token, err := svc.GenerateAccessToken(user, []string{entity.ScopeMe})
	require.NoError(t, err)
	assert.Equal(t, TokenTypeBearer, token.TokenType)
	assert.Equal(t, fixed.Add(30*time.Minute), token.ExpiresAt)

	claims, err := svc.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, []string{entity.ScopeMe}, claims.Scopes)
	assert.NotEmpty(t, claims.TokenID)
	assert.True(t, claims.ExpiresAt.Equal(token.ExpiresAt))
	assert.Equal(t, 30*time.Minute, svc.AccessTokenDuration())
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc := newTestJWTService(t)
	user := &entity.User{ID: 1, Username: "bob"}

	first, err := svc.GenerateAccessToken(user, nil)
	require.NoError(t, err)
	second, err := svc.GenerateAccessToken(user, nil)
	require.NoError(t, err)

	c1, err := svc.ValidateToken(first.Token)
	require.NoError(t, err)
	c2, err := svc.ValidateToken(second.Token)
	require.NoError(t, err)
	assert.NotEqual(t, c1.TokenID, c2.TokenID)
	assert.Empty(t, c1.Scopes)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := newTestJWTService(t)
	user := &entity.User{ID: 7, Username: "carol"}
	valid, err := svc.GenerateAccessToken(user, nil)
	require.NoError(t, err)

	otherCfg := newTestConfig()
	otherCfg.SecretKey.Access = "another_secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken(user, nil)
	require.NoError(t, err)

	issuerCfg := newTestConfig()
	issuerCfg.Auth.Issuer = "someone-else"
	otherIssuer, err := NewJWTService(issuerCfg)
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.GenerateAccessToken(user, nil)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "carol", "user_id": 7, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	expiredSvc := newTestJWTService(t)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.GenerateAccessToken(user, nil)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not.a.token",
		"wrong secret":   foreign.Token,
		"wrong issuer":   wrongIssuer.Token,
		"none algorithm": noneToken,
		"expired":        expired.Token,
		"tampered":       valid.Token + "x",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		})
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Access = ""
	_, err := NewJWTService(cfg)
	assert.Error(t, err)

	cfg = newTestConfig()
	cfg.Auth.AccessTokenTTL = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)
}
