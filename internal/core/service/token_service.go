package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/controlempleados/employee-records/internal/core/domain"
)

// TokenConfig carries the signing parameters injected once at startup.
// Request-handling code never reads these from ambient configuration.
type TokenConfig struct {
	Key      string
	Issuer   string
	Audience string
	Duration time.Duration
}

// tokenClaims is the wire form of an identity token. The registered subject
// claim holds the account id in decimal form.
type tokenClaims struct {
	Username string          `json:"username"`
	Role     domain.RoleName `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed identity tokens.
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	if cfg.Duration <= 0 {
		cfg.Duration = time.Hour
	}
	return &TokenService{cfg: cfg, now: time.Now}
}

// Issue signs a token carrying the account identity. Expiry is issued-at
// plus the configured duration.
func (s *TokenService) Issue(accountID int64, username string, role domain.RoleName) (string, error) {
	now := s.now().UTC()
	claims := tokenClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Duration)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.Key))
}

// Validate verifies signature, issuer, audience and expiry with zero
// clock-skew leeway. Any failure yields domain.ErrInvalidToken; the caller
// learns nothing about which check failed.
func (s *TokenService) Validate(token string) (*domain.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Key), nil
	},
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidToken
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{
		AccountID: accountID,
		Username:  claims.Username,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
