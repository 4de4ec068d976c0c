package jwtmw

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's validity window has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for malformed tokens, wrong signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the decoded identity payload of a verified token.
type Claims struct {
	UserID   uint
	Name     string
	LastName string
	Email    string
}

// Verifier defines the interface for JWT token verification.
type Verifier interface {
	// Verify checks the token's signature and expiry and returns its claims.
	Verify(token string) (*Claims, error)
}

// verifier implements the Verifier interface. Verification is stateless:
// validity is purely time- and signature-based, there is no revocation list.
type verifier struct {
	secret []byte
}

// NewVerifier creates a new JWT verifier with the provided secret.
func NewVerifier(secret string) Verifier {
	return &verifier{secret: []byte(secret)}
}

// Verify parses and validates a signed token string.
func (v *verifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// only HMAC is acceptable
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	sub, ok := mc["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{UserID: uint(sub)}
	if s, ok := mc["name"].(string); ok {
		claims.Name = s
	}
	if s, ok := mc["last_name"].(string); ok {
		claims.LastName = s
	}
	if s, ok := mc["email"].(string); ok {
		claims.Email = s
	}
	return claims, nil
}
