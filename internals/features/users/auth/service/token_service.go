// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// AccessTokenTTL is the lifetime of every access token.
const AccessTokenTTL = time.Hour

var (
	ErrMissingSecret = errors.New("token secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// Identity is the decoded claim set of a verified access token.
type Identity struct {
	Email  string
	Claims jwt.MapClaims
}

// TokenService signs and verifies HS256 access tokens with one shared secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewTokenService(secret string) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    AccessTokenTTL,
		now:    time.Now,
		// exp is checked against s.now below, not jwt.TimeFunc
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// Issue signs payload as-is plus iat/exp. Caller supplied iat/exp are overwritten.
func (s *TokenService) Issue(payload map[string]any) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the decoded claims.
func (s *TokenService) Verify(token string) (Identity, error) {
	if strings.TrimSpace(token) == "" {
		return Identity{}, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if _, err := s.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !claims.VerifyExpiresAt(s.now().Unix(), true) {
		return Identity{}, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	email, _ := claims["email"].(string)
	return Identity{Email: email, Claims: claims}, nil
}
