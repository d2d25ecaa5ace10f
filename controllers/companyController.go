package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/middlewares"
	"github.com/socksbox/socksbox-api/models"
	"gorm.io/gorm"
)

// RegisterCompany creates the seller's company record, one per seller.
func RegisterCompany(ctx *gin.Context) {
	sellerId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	var company models.Company
	if err := ctx.ShouldBindJSON(&company); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var existing models.Company
	err := initializers.DB.Where("seller_id = ?", sellerId).First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Company already registered for this seller")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	company.SellerID = sellerId
	company.Status = models.CompanyStatusPending
	company.ApprovedAt = nil

	if err := initializers.DB.Create(&company).Error; err != nil {
		log.Println("Company creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to register company")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"company": company})
}

func GetCompanies(ctx *gin.Context) {
	var companies []models.Company
	query := initializers.DB
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if result := query.Find(&companies); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch companies", result.Error)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"companies": companies})
}

func GetOwnCompany(ctx *gin.Context) {
	sellerId, ok := middlewares.UserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthenticationMissing)
		return
	}

	var company models.Company
	if err := initializers.DB.Where("seller_id = ?", sellerId).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "No company registered")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"company": company})
}

// UpdateCompanyStatus is the admin approval workflow; approval stamps the
// approved_at time.
func UpdateCompanyStatus(ctx *gin.Context) {
	companyId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid company ID")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	switch input.Status {
	case models.CompanyStatusApproved, models.CompanyStatusRejected, models.CompanyStatusSuspended, models.CompanyStatusPending:
	default:
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown company status: "+input.Status)
		return
	}

	updates := map[string]any{"status": input.Status}
	if input.Status == models.CompanyStatusApproved {
		now := time.Now()
		updates["approved_at"] = &now
	}

	result := initializers.DB.Model(&models.Company{}).Where("id = ?", companyId).Updates(updates)
	if result.Error != nil {
		log.Println("Company update error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update company status")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Company not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Company status updated successfully."})
}
