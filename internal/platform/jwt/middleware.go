package jwtmw

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextClaims is the Gin context key under which verified claims are stored.
const ContextClaims = "authClaims"

// Authenticate returns a Gin middleware that resolves the caller's identity
// from the Authorization header. A missing header leaves the request
// anonymous. A present header must carry a verifiable bearer token: malformed,
// badly signed or expired tokens abort the request with 401 and are never
// silently downgraded to anonymous.
func Authenticate(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			// anonymous request
			c.Next()
			return
		}
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := v.Verify(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// RequireUser returns a Gin middleware that restricts a route to requests
// with a resolved identity. It must run after Authenticate.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ClaimsFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// ClaimsFromContext extracts the verified claims attached by Authenticate.
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
