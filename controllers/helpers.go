package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/gulzar-store/gulzar-api/i18n"
	"github.com/gulzar-store/gulzar-api/models"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithError includes the underlying error string for admin-side
// endpoints where the frontend surfaces details.
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// requestLang resolves the response language from ?lang= or the
// Accept-Language header.
func requestLang(ctx *gin.Context) string {
	if lang := ctx.Query("lang"); lang != "" {
		return i18n.Normalize(lang)
	}
	return i18n.Normalize(ctx.GetHeader("Accept-Language"))
}

// currentUserID reads the authenticated user's id set by RequireAuth.
func currentUserID(ctx *gin.Context) (uint, bool) {
	id, exists := ctx.Get("userID")
	if !exists {
		return 0, false
	}
	userID, ok := id.(uint)
	return userID, ok
}

func callerIsAdmin(ctx *gin.Context) bool {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == models.RoleAdmin || role == models.RoleSuperAdmin
}
