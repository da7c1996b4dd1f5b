package middleware

import (
	"net/http"
	"os"
	"strings"

	sessionPort "clipcast/internal/ports/session"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token, rejects revoked tokens and
// puts userID and the raw token into the gin context. When the revocation
// check itself fails the request is rejected: a token that cannot be checked
// against the deny list is not accepted.
func JWTAuthMiddleware(tokens sessionPort.TokenStore, logger *zap.Logger) gin.HandlerFunc {
	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if tokens != nil {
			revoked, err := tokens.IsRevoked(c.Request.Context(), raw)
			if err != nil {
				logger.Error("Could not check token revocation", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "could not verify token"})
				return
			}
			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token revoked"})
				return
			}
		}

		c.Set("userID", claims.Subject)
		c.Set("token", raw)
		c.Next()
	}
}
