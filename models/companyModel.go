package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CompanyStatusPending   = "PENDING"
	CompanyStatusApproved  = "APPROVED"
	CompanyStatusRejected  = "REJECTED"
	CompanyStatusSuspended = "SUSPENDED"
)

type Company struct {
	gorm.Model
	SellerID                   uint       `json:"sellerId" gorm:"uniqueIndex"`
	CompanyName                string     `json:"companyName" binding:"required"`
	CompanyDescription         string     `json:"companyDescription"`
	Website                    string     `json:"website"`
	BusinessRegistrationNumber string     `json:"businessRegistrationNumber" binding:"required" gorm:"uniqueIndex"`
	TaxID                      string     `json:"taxId" binding:"required"`
	BusinessAddress            string     `json:"businessAddress"`
	ContactPhone               string     `json:"contactPhone" binding:"required"`
	ContactEmail               string     `json:"contactEmail" binding:"required,email"`
	Status                     string     `json:"status"`
	ApprovedAt                 *time.Time `json:"approvedAt"`
}
