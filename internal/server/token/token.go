// Package token issues and verifies the signed session tokens carried in cookies.
//
// Tokens are HS256 JWTs signed with the site secret. Nothing is stored server side:
// a token is valid when its signature, expiry and kind check out. Revoking a token
// before it expires would need a denylist keyed by the jti claim.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/gophmedia/internal/models"
)

const (
	// DefaultAccessTTL время жизни access token
	DefaultAccessTTL = 30 * time.Minute
	// DefaultRefreshTTL время жизни refresh token
	DefaultRefreshTTL = 7 * 24 * time.Hour

	issuer = "gophmedia"
)

// Kind distinguishes the cookie slot a token was issued for
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var (
	// ErrInvalidSignature covers bad signatures, foreign algorithms and malformed tokens
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired indicates that the token exp is in the past
	ErrExpired = errors.New("token expired")
	// ErrWrongKind indicates an access token used as refresh token or vice versa
	ErrWrongKind = errors.New("wrong token kind")
	// ErrEmptySecret is returned when the caller passes no signing key
	ErrEmptySecret = errors.New("signing secret is empty")
)

// Claims представляет JWT claims сессии
type Claims struct {
	Kind       Kind              `json:"knd"`
	UserID     int64             `json:"uid"`
	Permission models.Permission `json:"perm,omitempty"` // only in access tokens
	jwt.RegisteredClaims
}

// Token is a signed token string with its absolute expiry
type Token struct {
	ExpiresAt time.Time
	Value     string
	Kind      Kind
}

// Codec issues and decodes session tokens
type Codec struct {
	now        func() time.Time
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Option configures a Codec
type Option func(*Codec)

// WithClock replaces time.Now, used by tests to simulate expiry
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// NewCodec creates a codec; non-positive TTLs fall back to the defaults
func NewCodec(accessTTL, refreshTTL time.Duration, opts ...Option) *Codec {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}

	c := &Codec{
		now:        time.Now,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessTTL returns the access token lifetime
func (c *Codec) AccessTTL() time.Duration {
	return c.accessTTL
}

// RefreshTTL returns the refresh token lifetime
func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// IssueAccess создает access token с user id и уровнем доступа
func (c *Codec) IssueAccess(userID int64, permission models.Permission, secret []byte) (Token, error) {
	return c.issue(KindAccess, userID, permission, c.accessTTL, secret)
}

// IssueRefresh создает refresh token. Permission is not embedded: it is
// re-read from storage when the token is exchanged.
func (c *Codec) IssueRefresh(userID int64, secret []byte) (Token, error) {
	return c.issue(KindRefresh, userID, 0, c.refreshTTL, secret)
}

func (c *Codec) issue(kind Kind, userID int64, permission models.Permission, ttl time.Duration, secret []byte) (Token, error) {
	if len(secret) == 0 {
		return Token{}, ErrEmptySecret
	}

	now := c.now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		Kind:       kind,
		UserID:     userID,
		Permission: permission,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign %s token: %w", kind, err)
	}

	// exp в токене округлен до секунд, возвращаем то же значение
	return Token{Value: signed, ExpiresAt: claims.ExpiresAt.Time, Kind: kind}, nil
}

// Decode verifies signature, expiry and kind and returns the claims.
// Errors are ErrInvalidSignature, ErrExpired or ErrWrongKind, possibly wrapped.
func (c *Codec) Decode(raw string, secret []byte, expected Kind) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	if claims.Kind != expected {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrWrongKind, claims.Kind, expected)
	}

	return claims, nil
}

// Reason returns a short log label for a Decode error
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrExpired):
		return "expired"
	case errors.Is(err, ErrWrongKind):
		return "kind"
	case errors.Is(err, ErrInvalidSignature):
		return "signature"
	case errors.Is(err, ErrEmptySecret):
		return "no secret"
	default:
		return "invalid"
	}
}
