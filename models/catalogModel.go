package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
}

type Brand struct {
	gorm.Model
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Featured    bool   `json:"featured"`
}
