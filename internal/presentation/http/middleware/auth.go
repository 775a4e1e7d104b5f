package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrmdan725-prog/kitchinz-erp-sub000/internal/presentation/http/dto/response"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/apperror"
	"github.com/mrmdan725-prog/kitchinz-erp-sub000/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			response.Error(c, apperror.ErrForbidden)
			c.Abort()
			return
		}

		userRole, ok := roleVal.(string)
		if !ok {
			response.Error(c, apperror.ErrForbidden)
			c.Abort()
			return
		}

		for _, required := range roles {
			if userRole == required {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.ErrForbidden)
		c.Abort()
	}
}
