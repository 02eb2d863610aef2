package middleware

import (
	"strings"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/constants"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/database"
	apierrors "github.com/BayerTobias/join-backend-pythonanywhere/internal/errors"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireAuth resolves the bearer token from "Authorization: Token <key>"
// to a user. Requests without a live token are rejected with 401 before the
// handler runs.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := tokenFromHeader(c.GetHeader("Authorization"))
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Map condition so the dialector quotes the column; KEY is
		// reserved in MySQL.
		var token models.AuthToken
		if err := database.GetDB().Where(map[string]interface{}{"key": key}).First(&token).Error; err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		// Store user id and token key in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, token.UserID)
		c.Set("token_key", token.Key)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// GetTokenKey retrieves the presented token key from context
func GetTokenKey(c *gin.Context) (string, bool) {
	key, exists := c.Get("token_key")
	if !exists {
		return "", false
	}

	str, ok := key.(string)
	return str, ok
}

func tokenFromHeader(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != constants.TokenHeaderScheme {
		return "", false
	}

	key := strings.TrimSpace(parts[1])
	if key == "" {
		return "", false
	}

	return key, true
}
