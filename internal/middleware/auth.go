package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"palettehub/internal/domain"
	"palettehub/internal/service"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyEmail    = "email"
	ContextKeyClaims   = "claims"
)

// AuthRequired returns Gin middleware that validates JWT bearer tokens and
// injects the user context. Requests without a valid token are rejected.
func AuthRequired(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// AuthOptional returns Gin middleware that injects the user context when a
// valid bearer token is present and passes the request through anonymously
// otherwise. Public catalog endpoints use it to annotate save state for
// signed-in callers.
func AuthOptional(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, authService); ok {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, authService service.AuthService) (*service.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := authService.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setUserContext(c *gin.Context, claims *service.Claims) {
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyUsername, claims.Username)
	c.Set(ContextKeyEmail, claims.Email)
	c.Set(ContextKeyClaims, claims)
}

// GetUserID extracts the user ID from the Gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return val.(uuid.UUID), nil
}

// OptionalUserID returns the user ID when the request carried a valid token
// and nil otherwise.
func OptionalUserID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return nil
	}
	id := val.(uuid.UUID)
	return &id
}
