package models

import "gorm.io/gorm"

type ProductImage struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	ImageUrl  string `json:"imageUrl" binding:"required"`
}

type ProductColor struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	Color     string `json:"color"`
}

type ProductSize struct {
	gorm.Model
	ProductID uint   `json:"productId"`
	Size      string `json:"size"`
}

type Product struct {
	gorm.Model
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Inventory   int            `json:"inventory"`
	Featured    bool           `json:"featured"`
	Active      bool           `json:"active"`
	MainImage   string         `json:"mainImage"`
	CategoryID  *uint          `json:"categoryId"`
	BrandID     *uint          `json:"brandId"`
	Category    *Category      `json:"category,omitempty"`
	Brand       *Brand         `json:"brand,omitempty"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Colors      []ProductColor `json:"colors" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Sizes       []ProductSize  `json:"sizes" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// CreateProductData is the admin/seller payload; images, colors and sizes are
// written as child rows after the product itself.
type CreateProductData struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required"`
	Inventory   int      `json:"inventory"`
	Featured    bool     `json:"featured"`
	CategoryID  *uint    `json:"categoryId"`
	BrandID     *uint    `json:"brandId"`
	Images      []string `json:"images"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
}
