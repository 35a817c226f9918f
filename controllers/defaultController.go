package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Gulzar API 🌸. Bilingual (English/Kurdish) flower shop backend.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

PRODUCT
- GET "/product" - List products (pagination, search, category, featured)
- GET "/product/:id" - Get product by ID with reviews
- POST "/product" - Create product (admin: products)
- PUT "/product/:id" - Update product (admin: products)
- DELETE "/product/:id" - Delete product (admin: products)

CART
- GET "/cart" - Get my cart
- POST "/cart" - Add item to cart
- PATCH "/cart/:itemId" - Update item quantity
- DELETE "/cart/:itemId" - Remove item

CHECKOUT
- POST "/checkout" - Place order (simulated card payment)

ORDER
- GET "/order" - My order history
- GET "/order/:orderId" - Get order by ID
- GET "/admin/order" - All orders (admin: orders)
- PATCH "/admin/order/:orderId" - Update order status (admin: orders)
- POST "/admin/order/:orderId/refund" - Refund order (super admin)
- GET "/admin/order/undelivered-count" - Undelivered order count (admin: orders)

WISHLIST
- GET "/wishlist" - My wishlist
- POST "/wishlist" - Add product
- DELETE "/wishlist/:productId" - Remove product

REVIEW
- GET "/product/:id/reviews" - Product reviews
- POST "/review" - Create review
- DELETE "/review/:reviewId" - Delete review

NOTIFICATION
- GET "/notification" - My notifications
- PATCH "/notification/:notificationId/read" - Mark as read
- GET "/notification/unread-count" - Unread count

ADMIN
- POST "/admin/users" - Create permission-scoped admin (super admin)
- PATCH "/admin/users/:adminId/permissions" - Update permissions (super admin)
- DELETE "/admin/users/:adminId" - Delete admin (super admin)
- GET "/admin/users" - List users (admin: users)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
