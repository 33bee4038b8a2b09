package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userContextKey = "giftapiUser"

// ContextUser represents the authenticated principal stored in the request context.
type ContextUser struct {
	ID string
}

// Middleware validates bearer tokens and injects the authenticated user.
// A missing or unextractable token yields 401; a present but invalid,
// expired or tampered token yields 403.
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": ErrAuthRequired.Error()})
			return
		}

		token := extractBearerToken(authHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": ErrAuthRequired.Error()})
			return
		}

		claims, err := service.ValidateAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": ErrInvalidToken.Error()})
			return
		}

		c.Set(userContextKey, ContextUser{ID: claims.UserID})
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from the context.
func CurrentUser(c *gin.Context) (ContextUser, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return ContextUser{}, false
	}
	user, ok := value.(ContextUser)
	return user, ok
}

// RequireUser fetches the authenticated user's id.
func RequireUser(c *gin.Context) (string, bool) {
	user, ok := CurrentUser(c)
	if !ok || user.ID == "" {
		return "", false
	}
	return user.ID, true
}

func extractBearerToken(header string) string {
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
