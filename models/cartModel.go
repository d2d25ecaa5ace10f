package models

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem keeps the price as it was when the line was added. Product name and
// image are joined live at fetch time instead.
type CartItem struct {
	gorm.Model
	CartID    uint     `json:"cartId" gorm:"index"`
	ProductID uint     `json:"productId"`
	Quantity  int      `json:"quantity"`
	Color     string   `json:"color"`
	Size      string   `json:"size"`
	Price     float64  `json:"price"`
	Product   *Product `json:"-"`
}
