package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gulzar-store/gulzar-api/models"
)

// RequirePermission gates a route behind one admin permission scope.
// Super admins pass every scope; plain admins must carry the scope in
// their token's permissions claim.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		claims := userClaims.(jwt.MapClaims)
		role, _ := claims["role"].(string)
		if role == models.RoleSuperAdmin {
			ctx.Next()
			return
		}
		if role != models.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}

		permissions, _ := claims["permissions"].([]any)
		for _, p := range permissions {
			if name, ok := p.(string); ok && name == permission {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Missing permission: " + permission})
	}
}
