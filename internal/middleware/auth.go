package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDContextKey is the gin context key holding the authenticated
	// operator's id.
	UserIDContextKey = "user_id"

	bearerPrefix = "bearer"
)

// TokenParser validates a bearer token and returns the subject user id.
type TokenParser interface {
	ParseToken(token string) (userID string, err error)
}

// Auth returns a gin middleware that requires a valid bearer token on every
// request. The parsed user id is stored in the gin context; handlers that
// want the operator identity read it via GetUserID.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != bearerPrefix {
			unauthorized(c, "invalid authorization header")
			return
		}

		userID, err := parser.ParseToken(parts[1])
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the gin.Context.
// Returns an empty string when the request is unauthenticated.
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(UserIDContextKey); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": msg,
		"data":    nil,
	})
}
