// Package auth issues and verifies the bearer tokens that carry a
// player's identity. Tokens are plain capability credentials checked
// at the HTTP boundary; nothing below the handlers ever sees one.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvaquero/mazmorra/internal/errors"
	"github.com/dvaquero/mazmorra/internal/pkg/clock"
)

// DefaultTTL is how long an issued token stays valid
const DefaultTTL = 24 * time.Hour

const playerIDClaim = "playerId"

// Issuer signs and verifies player tokens
type Issuer struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// Config holds the dependencies for the token issuer
type Config struct {
	Secret string
	TTL    time.Duration
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Secret == "" {
		vb.RequiredField("Secret")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// NewIssuer creates a token issuer. TTL defaults to 24h.
func NewIssuer(cfg *Config) (*Issuer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Issuer{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		clock:  cfg.Clock,
	}, nil
}

// Issue signs a token carrying the player id
func (i *Issuer) Issue(playerID string) (string, error) {
	if playerID == "" {
		return "", errors.InvalidArgument("player ID is required")
	}

	now := i.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		playerIDClaim: playerID,
		"iat":         now.Unix(),
		"exp":         now.Add(i.ttl).Unix(),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks a token's signature and expiry and returns the player
// id it carries. Every failure mode collapses into Unauthenticated.
func (i *Issuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil || !token.Valid {
		return "", errors.Unauthenticated("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.Unauthenticated("invalid token claims")
	}

	playerID, ok := claims[playerIDClaim].(string)
	if !ok || playerID == "" {
		return "", errors.Unauthenticated("token carries no player id")
	}

	return playerID, nil
}
