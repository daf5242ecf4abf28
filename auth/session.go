// Package auth mints and verifies the anonymous storefront session tokens
// that scope a shopping cart to one browser.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionIssuer creates signed tokens carrying a fresh cart id.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionIssuer(secret string, ttl time.Duration) *SessionIssuer {
	return &SessionIssuer{secret: []byte(secret), ttl: ttl}
}

// POST /session
func (s *SessionIssuer) CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := "cart_" + randomHex(16)
		expiresAt := time.Now().Add(s.ttl)

		token, err := s.issueToken(cartID, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"cart_id":    cartID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func (s *SessionIssuer) issueToken(cartID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"cart_id": cartID,
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseSession verifies a token and returns the cart id it carries.
func ParseSession(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	cartID, ok := claims["cart_id"].(string)
	if !ok || cartID == "" {
		return "", errors.New("token has no cart id")
	}
	return cartID, nil
}

func randomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "fallback"
	}
	return hex.EncodeToString(bytes)
}
