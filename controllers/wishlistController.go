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

func AddToWishlist(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	var existing models.WishlistItem
	err := initializers.DB.
		Where("user_id = ? AND product_id = ?", userID, input.ProductID).
		First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, i18n.T(requestLang(ctx), "wishlist.exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to check wishlist")
		return
	}

	item := models.WishlistItem{UserID: userID, ProductID: input.ProductID}
	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add to wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": i18n.T(requestLang(ctx), "wishlist.added"),
		"id":      item.ID,
	})
}

func RemoveFromWishlist(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	// Unscoped: the (user_id, product_id) unique index must be freed
	// so the product can be wishlisted again.
	result := initializers.DB.Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productId).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove from wishlist")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Wishlist item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": i18n.T(requestLang(ctx), "wishlist.removed")})
}

func GetWishlist(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var items []models.WishlistItem
	result := initializers.DB.
		Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at desc").
		Find(&items)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": items})
}
