package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Socksbox API.

The following are the endpoints for this API:

AUTH
- POST "/auth/register" - Create user account
- POST "/auth/login" - Access user account
- GET "/auth/user" - Get the current user

CATALOG
- GET "/product" - List products (search, category, brand, featured filters)
- GET "/product/:id" - Get product by ID
- POST "/product" - Create product (seller/admin)
- PUT "/product/:id" - Update product (seller/admin)
- DELETE "/product/:id" - Delete product (seller/admin)
- POST "/product-images" - Upload product images (seller/admin)
- GET|POST|PUT|DELETE "/category" - Category catalog and admin CRUD
- GET|POST|PUT|DELETE "/brand" - Brand catalog and admin CRUD

CART
- GET "/cart" - Get the current user's cart
- POST "/cart/items" - Add an item to the cart
- PATCH "/cart/items/:itemId" - Change a line's quantity
- DELETE "/cart/items/:itemId" - Remove a line
- DELETE "/cart" - Clear the cart

ORDER
- POST "/order" - Place an order from the cart
- GET "/order" - Retrieve all orders (admin)
- GET "/order/:orderId" - Get order by ID
- GET "/user/:userId/orders" - Get orders for a specific user
- PATCH "/order/:orderId" - Update order status (admin)
- DELETE "/order/:orderId" - Delete order (admin)

PAYMENT
- POST "/payment/initiate" - Start an eSewa or cash-on-delivery payment
- GET "/payment/verify" - Verify a returning eSewa transaction

ADMIN
- GET "/admin/customers" - List customers
- GET "/admin/analytics" - Sales dashboard figures

COMPANY
- POST "/company" - Register a seller company
- GET "/company" - List companies (admin)
- GET "/company/me" - The seller's own company
- PATCH "/company/:id/status" - Approve or reject a company (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
