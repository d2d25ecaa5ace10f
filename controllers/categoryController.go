package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/models"
	"github.com/socksbox/socksbox-api/utils"
	"gorm.io/gorm"
)

func GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Find(&categories); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category.Slug = utils.Slugify(category.Name)
	if err := initializers.DB.Create(&category).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if err := initializers.DB.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", err)
		}
		return
	}

	var input models.Category
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"image_url":   input.ImageUrl,
	}
	if err := initializers.DB.Model(&category).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update category", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	if err := initializers.DB.Delete(&models.Category{}, categoryId).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
