package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/i18n"
	"github.com/gulzar-store/gulzar-api/initializers"
	"github.com/gulzar-store/gulzar-api/models"
)

func GetNotifications(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var notifications []models.Notification
	result := initializers.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notifications)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	// The list carries both language variants; the response picks the
	// caller's language as the display message.
	lang := requestLang(ctx)
	display := make([]gin.H, 0, len(notifications))
	for _, n := range notifications {
		message := n.Message
		if lang == i18n.LangKurdish && n.MessageKu != "" {
			message = n.MessageKu
		}
		display = append(display, gin.H{
			"id":        n.ID,
			"message":   message,
			"read":      n.Read,
			"createdAt": n.CreatedAt,
		})
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"notifications": display})
}

func MarkNotificationRead(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	notificationId, err := strconv.Atoi(ctx.Param("notificationId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid notification id")
		return
	}

	result := initializers.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationId, userID).
		Update("read", true)
	if result.Error != nil {
		log.Println("Update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update notification")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Notification not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Notification marked as read."})
}

func GetUnreadNotificationCount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var count int64
	result := initializers.DB.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count)
	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count notifications")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"unreadCount": count})
}
