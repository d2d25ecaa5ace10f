package controllers

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/middlewares"
	"github.com/socksbox/socksbox-api/models"
	"github.com/socksbox/socksbox-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Flat delivery charge, carried on the order separately from the item total.
const flatShippingCost = 100.0

func newTrackingNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
}

// CreateOrder turns the user's cart into an order: one header plus one item
// row per cart line, denormalized from the cart snapshot. The inserts, the
// inventory decrement and the cart clear run in a single transaction.
func CreateOrder(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	var shipping models.ShippingAddress
	if err := ctx.ShouldBindJSON(&shipping); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if shipping.Country == "" {
		shipping.Country = "Nepal"
	}

	var user models.User
	if err := initializers.DB.First(&user, userId).Error; err != nil {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Cart lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	var cartItems []models.CartItem
	if err := initializers.DB.Preload("Product").Where("cart_id = ?", cart.ID).Find(&cartItems).Error; err != nil {
		log.Println("Cart items error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	if len(cartItems) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot create order from empty cart")
		return
	}

	addressJSON, err := json.Marshal(shipping)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid shipping address")
		return
	}

	order := models.Order{
		UserID:          userId,
		CustomerName:    user.Name,
		CustomerEmail:   user.Email,
		Status:          models.OrderStatusPending,
		ShippingCost:    flatShippingCost,
		TrackingNumber:  newTrackingNumber(),
		ShippingAddress: datatypes.JSON(addressJSON),
	}

	tx := initializers.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, item := range cartItems {
		order.TotalAmount += item.Price * float64(item.Quantity)
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println("Order creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	for _, item := range cartItems {
		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
			Subtotal:  item.Price * float64(item.Quantity),
		}
		if item.Product != nil {
			orderItem.Name = item.Product.Name
			orderItem.ImageUrl = item.Product.MainImage
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			log.Println("Order item creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order items")
			return
		}

		if item.Product != nil {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("inventory", gorm.Expr("inventory - ?", item.Quantity)).Error; err != nil {
				tx.Rollback()
				log.Println("Inventory update error:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update inventory")
				return
			}
		}
	}

	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Cart clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	if err := tx.Commit().Error; err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	if err := sendOrderConfirmationEmail(user, order); err != nil {
		log.Println("Error sending order confirmation email:", err)
	}

	var created models.Order
	if err := initializers.DB.Preload("OrderItems").First(&created, order.ID).Error; err != nil {
		log.Println("Order reload error:", err)
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"order": order})
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"order": created})
}

func sendOrderConfirmationEmail(user models.User, order models.Order) error {
	emailData := utils.EmailData{
		Name:      user.Name,
		Message:   "Thank you for your order! We will notify you when it ships.",
		ActionURL: "",
		LogoURL:   "",
	}
	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(user.Email, "Order Confirmation #"+order.TrackingNumber, emailData, templatePath)
}

func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if search := ctx.Query("search"); search != "" {
		query = query.Where("id LIKE ?", "%"+search+"%")
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if search := ctx.Query("search"); search != "" {
		countQuery = countQuery.Where("id LIKE ?", "%"+search+"%")
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func GetOrdersByCustomerId(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse userId")
		return
	}

	requesterId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}
	role, _ := middlewares.UserRole(ctx)
	if requesterId != uint(userId) && role != models.RoleAdmin {
		sendErrorResponse(ctx, http.StatusForbidden, "Access denied")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	query := initializers.DB.Preload("OrderItems").Where("user_id = ?", userId)
	if result := query.Order("created_at " + sortOrder).Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("OrderItems").First(&order, orderId)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	requesterId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}
	role, _ := middlewares.UserRole(ctx)
	if order.UserID != requesterId && role != models.RoleAdmin {
		sendErrorResponse(ctx, http.StatusForbidden, "Access denied")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus mutates the only mutable order field.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	switch orderStatusData.Status {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status: "+orderStatusData.Status)
		return
	}

	result := initializers.DB.Model(&models.Order{}).
		Where("id = ?", orderId).
		Update("status", orderStatusData.Status)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}

func DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	result := initializers.DB.Delete(&models.Order{}, orderId)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}

func GetUndeliveredOrders(ctx *gin.Context) {
	var count int64

	result := initializers.DB.
		Model(&models.Order{}).
		Where("status != ?", models.OrderStatusDelivered).
		Count(&count)

	if result.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count undelivered orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"undeliveredOrderCount": count})
}
