package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"gymdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID       = "user_id"
	ctxUsername     = "username"
	ctxUserRole     = "user_role"
	ctxTokenID      = "token_id"
	ctxTokenExpires = "token_expires"
)

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}

// AuthMiddleware resolves the caller from a Bearer access token. revoked may
// be nil; when it is set and cannot answer, the request is refused with 503.
func AuthMiddleware(accessTokenSecret string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			unauthorized(c, "Token is empty")
			return
		}

		claims, err := ValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, ErrTokenExpired):
				unauthorized(c, "Token expired")
			default:
				unauthorized(c, "Invalid or malformed token")
			}
			return
		}

		if claims.TokenType != TokenTypeAccess {
			unauthorized(c, "Access token required")
			return
		}

		if revoked != nil && claims.ID != "" {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				logger.Error("token revocation check failed", "error", err)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "Session store unavailable"})
				return
			}
			if isRevoked {
				unauthorized(c, "Token revoked")
				return
			}
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxUserRole, claims.Role)
		c.Set(ctxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ctxTokenExpires, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}

// GetToken returns the id and expiry of the access token used for this request.
func GetToken(c *gin.Context) (string, time.Time, bool) {
	id := c.GetString(ctxTokenID)
	if id == "" {
		return "", time.Time{}, false
	}
	return id, c.GetTime(ctxTokenExpires), true
}

// SetUserID is used by tests that bypass token parsing.
func SetUserID(c *gin.Context, userID int) {
	c.Set(ctxUserID, userID)
}
