package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suri-ai/suri-backend/internal/dto"
	"github.com/suri-ai/suri-backend/internal/model"
	"github.com/suri-ai/suri-backend/internal/service"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Authenticate verifies the bearer session token and stores its claims in the
// gin context.
func Authenticate(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid Authorization header"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Could not validate credentials"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin gates admin routes on the role claim. Run it after
// Authenticate. A valid token alone is not enough; the role must be admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRole)
		if !ok || role != model.RoleAdmin {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's ID from the gin context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
