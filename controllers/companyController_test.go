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

func companyBody(name, regNumber string) map[string]any {
	return map[string]any{
		"companyName":                name,
		"businessRegistrationNumber": regNumber,
		"taxId":                      "TAX-001",
		"contactPhone":               "+9779800000000",
		"contactEmail":               "biz@example.com",
	}
}

func TestRegisterCompanyStartsPending(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)

	w := doRequest(router, "POST", "/company", tokenFor(t, seller), companyBody("Sock Traders", "REG-100"))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Company models.Company `json:"company"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CompanyStatusPending, resp.Company.Status)
	assert.Equal(t, seller.ID, resp.Company.SellerID)
	assert.Nil(t, resp.Company.ApprovedAt)
}

func TestRegisterCompanyOnePerSeller(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)

	w := doRequest(router, "POST", "/company", tokenFor(t, seller), companyBody("Sock Traders", "REG-100"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, "POST", "/company", tokenFor(t, seller), companyBody("Second Venture", "REG-200"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	initializers.DB.Model(&models.Company{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterCompanyRejectsCustomers(t *testing.T) {
	router := setupTest(t)
	customer := createUser(t, "June", "june@example.com", models.RoleCustomer)

	w := doRequest(router, "POST", "/company", tokenFor(t, customer), companyBody("Sock Traders", "REG-100"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterCompanyMissingFields(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)

	w := doRequest(router, "POST", "/company", tokenFor(t, seller), map[string]any{
		"companyName": "Sock Traders",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOwnCompany(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)

	w := doRequest(router, "GET", "/company/me", tokenFor(t, seller), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	doRequest(router, "POST", "/company", tokenFor(t, seller), companyBody("Sock Traders", "REG-100"))

	w = doRequest(router, "GET", "/company/me", tokenFor(t, seller), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Company models.Company `json:"company"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sock Traders", resp.Company.CompanyName)
}

func TestApproveCompanyStampsApprovedAt(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	doRequest(router, "POST", "/company", tokenFor(t, seller), companyBody("Sock Traders", "REG-100"))

	var company models.Company
	initializers.DB.Where("seller_id = ?", seller.ID).First(&company)

	w := doRequest(router, "PATCH", fmt.Sprintf("/company/%d/status", company.ID), tokenFor(t, admin), map[string]any{
		"status": models.CompanyStatusApproved,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	initializers.DB.First(&company, company.ID)
	assert.Equal(t, models.CompanyStatusApproved, company.Status)
	assert.NotNil(t, company.ApprovedAt)
}

func TestUpdateCompanyStatusRejectsUnknownStatus(t *testing.T) {
	router := setupTest(t)
	seller := createUser(t, "Sita", "sita@example.com", models.RoleSeller)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	doRequest(router, "POST", "/company", tokenFor(t, seller), companyBody("Sock Traders", "REG-100"))

	var company models.Company
	initializers.DB.Where("seller_id = ?", seller.ID).First(&company)

	w := doRequest(router, "PATCH", fmt.Sprintf("/company/%d/status", company.ID), tokenFor(t, admin), map[string]any{
		"status": "FROZEN",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCompanyStatusNotFound(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	w := doRequest(router, "PATCH", "/company/999/status", tokenFor(t, admin), map[string]any{
		"status": models.CompanyStatusRejected,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCompaniesStatusFilter(t *testing.T) {
	router := setupTest(t)
	admin := createUser(t, "Root", "root@example.com", models.RoleAdmin)

	first := createUser(t, "Sita", "sita@example.com", models.RoleSeller)
	second := createUser(t, "Hari", "hari@example.com", models.RoleSeller)
	doRequest(router, "POST", "/company", tokenFor(t, first), companyBody("Sock Traders", "REG-100"))
	doRequest(router, "POST", "/company", tokenFor(t, second), map[string]any{
		"companyName":                "Toe Warmers",
		"businessRegistrationNumber": "REG-200",
		"taxId":                      "TAX-002",
		"contactPhone":               "+9779811111111",
		"contactEmail":               "toe@example.com",
	})

	var company models.Company
	initializers.DB.Where("seller_id = ?", first.ID).First(&company)
	doRequest(router, "PATCH", fmt.Sprintf("/company/%d/status", company.ID), tokenFor(t, admin), map[string]any{
		"status": models.CompanyStatusApproved,
	})

	var resp struct {
		Companies []models.Company `json:"companies"`
	}

	w := doRequest(router, "GET", "/company", tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Companies, 2)

	w = doRequest(router, "GET", "/company?status=PENDING", tokenFor(t, admin), nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Companies, 1)
	assert.Equal(t, "Toe Warmers", resp.Companies[0].CompanyName)
}
