package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/models"
	"github.com/socksbox/socksbox-api/utils"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

// CreateProduct inserts the product row, then its image/color/size child rows
// as separate batches. A failed child batch is logged and does not fail the
// request; the parent row stands on its own.
func CreateProduct(ctx *gin.Context) {
	var input models.CreateProductData
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product := models.Product{
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Inventory:   input.Inventory,
		Featured:    input.Featured,
		Active:      true,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
	}
	if len(input.Images) > 0 {
		product.MainImage = input.Images[0]
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	if len(input.Images) > 0 {
		images := make([]models.ProductImage, 0, len(input.Images))
		for _, url := range input.Images {
			images = append(images, models.ProductImage{ProductID: product.ID, ImageUrl: url})
		}
		if err := initializers.DB.Create(&images).Error; err != nil {
			log.Println("Error inserting product images:", err)
		}
	}

	if len(input.Colors) > 0 {
		colors := make([]models.ProductColor, 0, len(input.Colors))
		for _, color := range input.Colors {
			colors = append(colors, models.ProductColor{ProductID: product.ID, Color: color})
		}
		if err := initializers.DB.Create(&colors).Error; err != nil {
			log.Println("Error inserting product colors:", err)
		}
	}

	if len(input.Sizes) > 0 {
		sizes := make([]models.ProductSize, 0, len(input.Sizes))
		for _, size := range input.Sizes {
			sizes = append(sizes, models.ProductSize{ProductID: product.ID, Size: size})
		}
		if err := initializers.DB.Create(&sizes).Error; err != nil {
			log.Println("Error inserting product sizes:", err)
		}
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct touches parent fields only; child rows are managed at create
// and via the image upload endpoint.
func UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var input models.CreateProductData
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch product", err)
		}
		return
	}

	updates := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"inventory":   input.Inventory,
		"featured":    input.Featured,
		"category_id": input.CategoryID,
		"brand_id":    input.BrandID,
	}
	if err := initializers.DB.Model(&product).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if err := initializers.DB.Delete(&models.Product{}, productId).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// getAWSConfig returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	productIdStr := ctx.PostForm("productId")
	if productIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
		return
	}

	productId, err := strconv.Atoi(productIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid productId", err)
		return
	}

	// Validate product exists
	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique filename to prevent overwrites
		uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(context.TODO(), &s3.PutObjectInput{
			Bucket:      aws.String("socksbox"),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)

		productImage := models.ProductImage{
			ImageUrl:  result.Location,
			ProductID: uint(productId),
		}

		if err := initializers.DB.Create(&productImage).Error; err != nil {
			log.Printf("Error saving image to database: %v", err)
			// The file is already uploaded, so only log this error
		}
	}

	if product.MainImage == "" && len(uploadedUrls) > 0 {
		if err := initializers.DB.Model(&product).Update("main_image", uploadedUrls[0]).Error; err != nil {
			log.Printf("Error updating main image: %v", err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}

	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	offset := (page - 1) * limit

	query := initializers.DB.
		Preload("Images").
		Preload("Colors").
		Preload("Sizes").
		Preload("Category").
		Preload("Brand")
	countQuery := initializers.DB.Model(&models.Product{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
		countQuery = countQuery.Where("name LIKE ?", "%"+search+"%")
	}
	if categoryId := ctx.Query("category"); categoryId != "" {
		query = query.Where("category_id = ?", categoryId)
		countQuery = countQuery.Where("category_id = ?", categoryId)
	}
	if brandId := ctx.Query("brand"); brandId != "" {
		query = query.Where("brand_id = ?", brandId)
		countQuery = countQuery.Where("brand_id = ?", brandId)
	}
	if featured := ctx.Query("featured"); featured == "true" {
		query = query.Where("featured = ?", true)
		countQuery = countQuery.Where("featured = ?", true)
	}

	result := query.Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	var count int64
	countQuery.Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := initializers.DB.
		Preload("Images").
		Preload("Colors").
		Preload("Sizes").
		Preload("Category").
		Preload("Brand").
		First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}
