package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued token stays valid.
const TokenLifetime = time.Hour

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrTokenMalformed = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrBadSignature   = fmt.Errorf("%w: bad signature", ErrInvalidToken)
	ErrTokenExpired   = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// Claims is the payload carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenCodec issues and verifies HS256 tokens. It holds no mutable state and is
// safe for concurrent use.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// CodecOption configures a TokenCodec.
type CodecOption func(*TokenCodec)

// WithClock overrides the time source used for issuing and verifying tokens.
func WithClock(now func() time.Time) CodecOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec creates a TokenCodec signing with the given secret.
func NewTokenCodec(secret []byte, opts ...CodecOption) *TokenCodec {
	c := &TokenCodec{
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue creates a signed token for email that expires TokenLifetime from now.
func (c *TokenCodec) Issue(email string) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded email.
// The returned error is one of ErrTokenMalformed, ErrBadSignature or ErrTokenExpired.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", classify(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return "", ErrTokenMalformed
	}

	return claims.Email, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenMalformed
	}
}
