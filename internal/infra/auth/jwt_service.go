package auth

import (
	"time"

	"grainauth/config"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/domain/service"
	"grainauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeBearer is the token_type returned by the login endpoint.
const TokenTypeBearer = "bearer"

// accessClaims is the wire form of an access token. "sub" carries the username.
type accessClaims struct {
	UserID int64    `json:"user_id"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 {
		return nil, errors.New("auth.accessTokenTTL must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		issuer: cfg.Auth.Issuer,
		ttl:    cfg.Auth.AccessTokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateAccessToken signs a token for the user carrying the granted scopes.
func (s *jwtService) GenerateAccessToken(user *entity.User, scopes []string) (*entity.AccessToken, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	if scopes == nil {
		scopes = []string{}
	}

	claims := accessClaims{
		UserID: user.ID,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	return &entity.AccessToken{
		Token:     signed,
		TokenType: TokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken verifies the signature, algorithm, issuer and expiry of a token.
func (s *jwtService) ValidateToken(tokenString string) (*entity.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized.WithCause(err)
	}
	if claims.Subject == "" || claims.UserID <= 0 {
		return nil, domainerrors.ErrUnauthorized.WithDetails("token is missing its subject")
	}

	result := &entity.TokenClaims{
		TokenID:  claims.ID,
		UserID:   claims.UserID,
		Username: claims.Subject,
		Scopes:   claims.Scopes,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// AccessTokenDuration returns the configured token lifetime.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.ttl
}
