package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ak1058/Ai-Recipe-Maker/auth"
	"github.com/ak1058/Ai-Recipe-Maker/config"
	"github.com/ak1058/Ai-Recipe-Maker/logger"
	"github.com/ak1058/Ai-Recipe-Maker/models"
	"github.com/ak1058/Ai-Recipe-Maker/repository"

	"go.uber.org/zap"
)

// IdentityKey is the gin context key the resolved user is stored under.
const IdentityKey = "identity"

// RequireAuth verifies the bearer token and resolves the acting user,
// gating every protected handler. All verification failures collapse into
// a uniform 401. A valid token whose subject no longer exists yields 404,
// distinguishable from 401; the original API behaves this way and clients
// depend on it.
func RequireAuth(cfg *config.Config, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims, err := auth.ParseToken(tokenString, cfg.SecretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			logger.Error("Failed to load user for token", zap.Uint("user_id", claims.UserID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		c.Set(IdentityKey, user)
		c.Next()
	}
}

// Identity returns the user resolved by RequireAuth, or nil outside a
// protected route.
func Identity(c *gin.Context) *models.User {
	value, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
