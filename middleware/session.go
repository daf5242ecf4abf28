package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sr-Das-Ofertas/probotsv2/auth"
)

// CartSession validates the session token and stashes its cart id in the
// request context under "cart_id".
func CartSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		cartID, err := auth.ParseSession(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("cart_id", cartID)
		c.Next()
	}
}

// CartID pulls the session's cart id set by CartSession.
func CartID(c *gin.Context) (string, bool) {
	v, exists := c.Get("cart_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
