package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"docanalyzer/internal/domain"
	"docanalyzer/internal/service"
)

const (
	ContextKeySessionID = "session_id"
	ContextKeyClaims    = "claims"
)

// SessionMiddleware returns Gin middleware that validates the session bearer
// token and injects the session id.
func SessionMiddleware(sessionService service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := sessionService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired session token"},
			})
			return
		}

		c.Set(ContextKeySessionID, claims.SessionID)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetSessionID extracts the session ID from the Gin context.
func GetSessionID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeySessionID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}
