package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure. Callers surface one
// generic message so clients cannot distinguish missing, malformed, expired
// and forged tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims bind a token to exactly one user. The payload keeps the
// {"user":{"id":...}} shape existing storefront clients decode.
type Claims struct {
	jwt.RegisteredClaims
	User TokenUser `json:"user"`
}

// TokenUser carries the user identifier inside the token payload.
type TokenUser struct {
	ID string `json:"id"`
}

// Signer issues and verifies HS256 bearer tokens.
type Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSigner builds a token signer. A zero ttl issues tokens without an expiry,
// matching what already-deployed clients hold.
func NewSigner(secret []byte, ttl time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl}
}

// Issue produces a signed token for the given user id.
func (s *Signer) Issue(userID string) (string, error) {
	claims := Claims{User: TokenUser{ID: userID}}
	if s.ttl > 0 {
		now := time.Now()
		claims.IssuedAt = jwt.NewNumericDate(now)
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature (and expiry, when present) and returns the
// embedded user id.
func (s *Signer) Verify(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.User.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}
