package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gulzar-store/gulzar-api/i18n"
	"github.com/gulzar-store/gulzar-api/services"
)

// checkoutTimeout bounds how long a placement attempt may hold row
// locks if the database stalls.
const checkoutTimeout = 10 * time.Second

var checkoutService *services.OrderPlacementService

// SetCheckoutService wires the order placement service built in main.
func SetCheckoutService(service *services.OrderPlacementService) {
	checkoutService = service
}

func Checkout(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var form services.CheckoutForm
	if err := ctx.ShouldBindJSON(&form); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), checkoutTimeout)
	defer cancel()

	lang := requestLang(ctx)
	orderID, err := checkoutService.PlaceOrder(reqCtx, userID, form)
	if err != nil {
		var validationErr *services.ValidationError
		var stockErr *services.InsufficientStockError
		var persistenceErr *services.PersistenceError

		switch {
		case errors.Is(err, services.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, i18n.T(lang, "cart.empty"))
		case errors.As(err, &validationErr):
			sendJSONResponse(ctx, http.StatusUnprocessableEntity, gin.H{
				"message": validationErr.Reason,
				"field":   validationErr.Field,
			})
		case errors.As(err, &stockErr):
			sendJSONResponse(ctx, http.StatusConflict, gin.H{
				"message":   i18n.T(lang, "checkout.insufficient_stock"),
				"productId": stockErr.ProductID,
			})
		case errors.As(err, &persistenceErr):
			log.Println("Checkout persistence error:", persistenceErr.Err)
			sendErrorResponse(ctx, http.StatusInternalServerError, i18n.T(lang, "checkout.payment_failed"))
		default:
			log.Println("Checkout error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, i18n.T(lang, "checkout.payment_failed"))
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": i18n.T(lang, "checkout.success"),
		"orderId": orderID,
	})
}
