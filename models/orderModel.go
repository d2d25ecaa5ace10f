package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	gorm.Model
	UserID          uint           `json:"userId"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	Status          string         `json:"status"`
	TotalAmount     float64        `json:"totalAmount"`
	ShippingCost    float64        `json:"shippingCost"`
	TrackingNumber  string         `json:"trackingNumber" gorm:"uniqueIndex"`
	ShippingAddress datatypes.JSON `json:"shippingAddress"`
	OrderItems      []OrderItem    `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a copy of the cart line at purchase time, so later product
// edits do not change historical orders.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId" gorm:"index"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	ImageUrl  string  `json:"imageUrl"`
	Subtotal  float64 `json:"subtotal"`
}

type ShippingAddress struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
	Country string `json:"country"`
}
