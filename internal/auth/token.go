package auth // package auth provides credential checks and bearer token handling

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned when a token fails signature, expiry or
// claim-shape validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the claim set carried by a catalog bearer token.  Subject holds
// the user id in string form and Role gates the Admin-only mutation routes.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a numeric user id.
func (c *Claims) UserID() (int, error) {
	return strconv.Atoi(c.Subject)
}

// NewToken builds and signs an HS256 JWT for a user.  It takes the signing
// secret, the user ID, the user's role, and a TTL in days.  The JWT carries
// the subject (sub), role, expiration (exp) and issued at (iat) claims.
func NewToken(secret string, userID int, role string, ttlDays int) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ttlDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry of a raw token string and
// returns its claims.  Tokens signed with anything but HMAC are rejected.
func ParseToken(secret, raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
