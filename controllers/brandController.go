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

func GetBrands(ctx *gin.Context) {
	var brands []models.Brand
	query := initializers.DB
	if featured := ctx.Query("featured"); featured == "true" {
		query = query.Where("featured = ?", true)
	}
	if result := query.Find(&brands); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch brands", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"brands": brands})
}

func GetBrand(ctx *gin.Context) {
	brandId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid brand ID", err)
		return
	}

	var brand models.Brand
	if err := initializers.DB.First(&brand, brandId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Brand not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve brand", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, brand)
}

func CreateBrand(ctx *gin.Context) {
	var brand models.Brand
	if err := ctx.ShouldBindJSON(&brand); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	brand.Slug = utils.Slugify(brand.Name)
	if err := initializers.DB.Create(&brand).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create brand", err)
		return
	}

	ctx.JSON(http.StatusCreated, brand)
}

func UpdateBrand(ctx *gin.Context) {
	brandId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid brand ID", err)
		return
	}

	var brand models.Brand
	if err := initializers.DB.First(&brand, brandId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Brand not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve brand", err)
		}
		return
	}

	var input models.Brand
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	updates := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"logo":        input.Logo,
		"featured":    input.Featured,
	}
	if err := initializers.DB.Model(&brand).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update brand", err)
		return
	}

	ctx.JSON(http.StatusOK, brand)
}

func DeleteBrand(ctx *gin.Context) {
	brandId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid brand ID", err)
		return
	}

	if err := initializers.DB.Delete(&models.Brand{}, brandId).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete brand", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Brand deleted successfully"})
}
