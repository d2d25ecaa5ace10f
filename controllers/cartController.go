package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/middlewares"
	"github.com/socksbox/socksbox-api/models"
	"gorm.io/gorm"
)

type cartItemView struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	ImageUrl    string  `json:"imageUrl"`
	Quantity    int     `json:"quantity"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type cartView struct {
	ID          uint           `json:"id"`
	UserID      uint           `json:"userId"`
	Items       []cartItemView `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	ItemCount   int            `json:"itemCount"`
}

// findOrCreateCart returns the user's cart, creating the row on first access.
func findOrCreateCart(userId uint) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userId).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userId}
		err = initializers.DB.Create(&cart).Error
	}
	return cart, err
}

// buildCartView loads the full cart snapshot: every line joined with its live
// product name and image, plus the total and item count folds. Mutating
// handlers return this snapshot so clients replace local state wholesale.
func buildCartView(userId uint) (cartView, error) {
	cart, err := findOrCreateCart(userId)
	if err != nil {
		return cartView{}, err
	}

	var items []models.CartItem
	if err := initializers.DB.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return cartView{}, err
	}

	view := cartView{ID: cart.ID, UserID: cart.UserID, Items: []cartItemView{}}
	for _, item := range items {
		itemView := cartItemView{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Color:     item.Color,
			Size:      item.Size,
			Price:     item.Price,
			Subtotal:  item.Price * float64(item.Quantity),
		}
		if item.Product != nil {
			itemView.ProductName = item.Product.Name
			itemView.ImageUrl = item.Product.MainImage
		}
		view.Items = append(view.Items, itemView)
		view.TotalAmount += item.Price * float64(item.Quantity)
		view.ItemCount += item.Quantity
	}

	return view, nil
}

func sendCartResponse(ctx *gin.Context, status int, userId uint) {
	view, err := buildCartView(userId)
	if err != nil {
		log.Println("Failed to load cart:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	sendJSONResponse(ctx, status, gin.H{"cart": view})
}

func GetCart(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}
	sendCartResponse(ctx, http.StatusOK, userId)
}

func AddCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	var input struct {
		ProductID uint   `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
		Color     string `json:"color"`
		Size      string `json:"size"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Cart lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	// Price comes from a fresh product read, never from the request.
	var product models.Product
	if err := initializers.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate product")
		}
		return
	}

	var existingItem models.CartItem
	err = initializers.DB.
		Where("cart_id = ? AND product_id = ? AND color = ? AND size = ?",
			cart.ID, input.ProductID, input.Color, input.Size).
		First(&existingItem).Error

	if err == nil {
		existingItem.Quantity += input.Quantity
		if err := initializers.DB.Save(&existingItem).Error; err != nil {
			log.Println("Update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity")
			return
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		newItem := models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Color:     input.Color,
			Size:      input.Size,
			Price:     product.Price,
		}
		if err := initializers.DB.Create(&newItem).Error; err != nil {
			log.Println("Create error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
			return
		}
	} else {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch cart item")
		return
	}

	sendCartResponse(ctx, http.StatusOK, userId)
}

func UpdateCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item id")
		return
	}

	var input struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Cart lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	result := initializers.DB.Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemId, cart.ID).
		Update("quantity", input.Quantity)
	if result.Error != nil {
		log.Println("Update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendCartResponse(ctx, http.StatusOK, userId)
}

func RemoveCartItem(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	itemId, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item id")
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Cart lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	result := initializers.DB.Where("id = ? AND cart_id = ?", itemId, cart.ID).Delete(&models.CartItem{})
	if result.Error != nil {
		log.Println("Delete error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete cart item")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
		return
	}

	sendCartResponse(ctx, http.StatusOK, userId)
}

// ClearCart empties the cart's lines; the cart row itself survives.
func ClearCart(ctx *gin.Context) {
	userId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	cart, err := findOrCreateCart(userId)
	if err != nil {
		log.Println("Cart lookup error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	if err := initializers.DB.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		log.Println("Clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendCartResponse(ctx, http.StatusOK, userId)
}
