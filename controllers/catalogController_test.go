package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateCategorySlugsName(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	w := doRequest(router, "POST", "/category", tokenFor(t, admin), map[string]any{
		"name":        "Winter Collection",
		"description": "Cold weather picks",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var category models.Category
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
	assert.Equal(t, "winter-collection", category.Slug)
}

func TestCategoryMutationsRequireAdmin(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)

	w := doRequest(router, "POST", "/category", tokenFor(t, seller), map[string]any{"name": "Sport"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, "POST", "/category", "", map[string]any{"name": "Sport"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListCategoriesIsPublic(t *testing.T) {
	router := setupTest(t)
	initializers.DB.Create(&models.Category{Name: "Sport", Slug: "sport"})
	initializers.DB.Create(&models.Category{Name: "Casual", Slug: "casual"})

	w := doRequest(router, "GET", "/category", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Categories, 2)
}

func TestUpdateCategory(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	category := models.Category{Name: "Sport", Slug: "sport"}
	initializers.DB.Create(&category)

	w := doRequest(router, "PUT", fmt.Sprintf("/category/%d", category.ID), tokenFor(t, admin), map[string]any{
		"name":        "Sportswear",
		"description": "Performance socks",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Category
	initializers.DB.First(&stored, category.ID)
	assert.Equal(t, "Sportswear", stored.Name)
	assert.Equal(t, "Performance socks", stored.Description)
}

func TestDeleteCategory(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	category := models.Category{Name: "Sport", Slug: "sport"}
	initializers.DB.Create(&category)

	w := doRequest(router, "DELETE", fmt.Sprintf("/category/%d", category.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", fmt.Sprintf("/category/%d", category.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBrand(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	w := doRequest(router, "POST", "/brand", tokenFor(t, admin), map[string]any{
		"name":     "Happy Feet",
		"featured": true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var brand models.Brand
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &brand))
	assert.Equal(t, "happy-feet", brand.Slug)
	assert.True(t, brand.Featured)
}

func TestListBrandsFeaturedFilter(t *testing.T) {
	router := setupTest(t)
	initializers.DB.Create(&models.Brand{Name: "Happy Feet", Slug: "happy-feet", Featured: true})
	initializers.DB.Create(&models.Brand{Name: "Plain Pair", Slug: "plain-pair"})

	var resp struct {
		Brands []models.Brand `json:"brands"`
	}

	w := doRequest(router, "GET", "/brand", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Brands, 2)

	w = doRequest(router, "GET", "/brand?featured=true", "", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Brands, 1)
	assert.Equal(t, "Happy Feet", resp.Brands[0].Name)
}

func TestGetBrandNotFound(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, "GET", "/brand/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
