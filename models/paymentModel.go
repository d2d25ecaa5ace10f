package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodEsewa          = "ESEWA"
	PaymentMethodCashOnDelivery = "CASH_ON_DELIVERY"
	PaymentMethodBankTransfer   = "BANK_TRANSFER"

	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

type Payment struct {
	gorm.Model
	OrderID       uint       `json:"orderId" gorm:"uniqueIndex"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId" gorm:"uniqueIndex"`
	EsewaRefID    string     `json:"esewaRefId"`
	PaymentDate   *time.Time `json:"paymentDate"`
	FailureReason string     `json:"failureReason"`
}
