package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gulzar-store/gulzar-api/i18n"
	"github.com/gulzar-store/gulzar-api/initializers"
	"github.com/gulzar-store/gulzar-api/models"
)

type reviewInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func CreateReview(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input reviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	var existing models.Review
	err := initializers.DB.
		Where("user_id = ? AND product_id = ?", userID, input.ProductID).
		First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, i18n.T(requestLang(ctx), "review.exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to check reviews")
		return
	}

	review := models.Review{
		UserID:    userID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := initializers.DB.Create(&review).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create review")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": i18n.T(requestLang(ctx), "review.created"),
		"id":      review.ID,
	})
}

func GetProductReviews(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	var reviews []models.Review
	result := initializers.DB.
		Where("product_id = ?", productId).
		Order("created_at desc").
		Find(&reviews)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}

// DeleteReview removes the caller's own review; admins may remove any.
func DeleteReview(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	reviewId, err := strconv.Atoi(ctx.Param("reviewId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid review id")
		return
	}

	var review models.Review
	if err := initializers.DB.First(&review, reviewId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Review not found")
		return
	}

	if review.UserID != userID && !callerIsAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "You cannot delete this review")
		return
	}

	// Unscoped: frees the (user_id, product_id) unique index so the
	// user can review the product again later.
	if err := initializers.DB.Unscoped().Delete(&review).Error; err != nil {
		log.Println("Delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review deleted."})
}
