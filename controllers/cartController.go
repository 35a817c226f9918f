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

type cartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// getOrCreateCart returns the user's cart, creating it on first use.
func getOrCreateCart(userID uint) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		err = initializers.DB.Create(&cart).Error
	}
	return cart, err
}

func AddCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input cartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	var existing models.CartItem
	err = initializers.DB.
		Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).
		First(&existing).Error

	if err == nil {
		existing.Quantity += input.Quantity
		if err := initializers.DB.Save(&existing).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity.")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": i18n.T(requestLang(ctx), "cart.updated"),
			"id":      existing.ID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	item := models.CartItem{CartID: cart.ID, ProductID: input.ProductID, Quantity: input.Quantity}
	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": i18n.T(requestLang(ctx), "cart.item_added"),
		"id":      item.ID,
	})
}

func UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	var input struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	result := initializers.DB.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		Update("quantity", input.Quantity)
	if result.Error != nil {
		log.Println("Update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": i18n.T(requestLang(ctx), "cart.updated")})
}

func RemoveCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item id")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	// Unscoped: the row must leave the (cart_id, product_id) unique
	// index so the product can be added again later.
	if result := initializers.DB.Unscoped().
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		Delete(&models.CartItem{}); result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to remove cart item")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": i18n.T(requestLang(ctx), "cart.item_removed")})
}

func GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var cart models.Cart
	result := initializers.DB.
		Where("user_id = ?", userID).
		Preload("Items.Product").
		First(&cart)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": models.Cart{UserID: userID, Items: []models.CartItem{}}})
		} else {
			log.Println("Database error:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}
