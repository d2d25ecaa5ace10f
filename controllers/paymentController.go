package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/models"
	"gorm.io/gorm"
)

func esewaBaseURL() string {
	if base := os.Getenv("ESEWA_BASE_URL"); base != "" {
		return base
	}
	return "https://uat.esewa.com.np"
}

func esewaMerchantCode() string {
	if code := os.Getenv("ESEWA_MERCHANT_CODE"); code != "" {
		return code
	}
	return "EPAYTEST"
}

// buildEsewaPaymentURL assembles the hosted-checkout redirect for an order.
func buildEsewaPaymentURL(payment models.Payment) string {
	amount := strconv.FormatFloat(payment.Amount, 'f', 2, 64)
	orderId := strconv.FormatUint(uint64(payment.OrderID), 10)

	successURL := os.Getenv("PAYMENT_SUCCESS_URL")
	if successURL == "" {
		successURL = "http://localhost:3000/payment/success"
	}
	failureURL := os.Getenv("PAYMENT_FAILURE_URL")
	if failureURL == "" {
		failureURL = "http://localhost:3000/payment/failure"
	}

	params := url.Values{}
	params.Set("tAmt", amount)
	params.Set("amt", amount)
	params.Set("txAmt", "0")
	params.Set("psc", "0")
	params.Set("pdc", "0")
	params.Set("scd", esewaMerchantCode())
	params.Set("pid", orderId)
	params.Set("su", successURL+"?oid="+orderId)
	params.Set("fu", failureURL+"?oid="+orderId)

	return esewaBaseURL() + "/epay/main?" + params.Encode()
}

// InitiatePayment records a payment attempt for an order and either hands
// back an eSewa redirect URL or confirms a cash-on-delivery order outright.
func InitiatePayment(ctx *gin.Context) {
	var input struct {
		OrderID       uint    `json:"orderId" binding:"required"`
		Amount        float64 `json:"amount" binding:"required"`
		PaymentMethod string  `json:"paymentMethod" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	method := strings.ToUpper(input.PaymentMethod)
	if method != models.PaymentMethodEsewa &&
		method != models.PaymentMethodCashOnDelivery &&
		method != models.PaymentMethodBankTransfer {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unsupported payment method: "+input.PaymentMethod)
		return
	}

	var order models.Order
	if err := initializers.DB.First(&order, input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	now := time.Now()
	payment := models.Payment{
		OrderID:       order.ID,
		Amount:        input.Amount,
		PaymentMethod: method,
		Status:        models.PaymentStatusPending,
		TransactionID: uuid.NewString(),
		PaymentDate:   &now,
	}

	if err := initializers.DB.Create(&payment).Error; err != nil {
		log.Println("Payment creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	if method == models.PaymentMethodEsewa {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"paymentUrl":    buildEsewaPaymentURL(payment),
			"transactionId": payment.TransactionID,
			"status":        "REDIRECT",
			"message":       "Redirect to eSewa for payment",
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"transactionId": payment.TransactionID,
		"status":        "SUCCESS",
		"message":       "Order placed successfully",
	})
}

// VerifyEsewaPayment checks a returning transaction against the eSewa
// transrec endpoint and settles the payment and order status accordingly.
func VerifyEsewaPayment(ctx *gin.Context) {
	oid := ctx.Query("oid")
	refId := ctx.Query("refId")
	amt := ctx.Query("amt")
	if oid == "" || refId == "" || amt == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing parameters")
		return
	}

	orderId, err := strconv.Atoi(oid)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order id")
		return
	}

	var payment models.Payment
	if err := initializers.DB.Where("order_id = ?", orderId).First(&payment).Error; err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, "Payment not found for order")
		return
	}

	resp, err := resty.New().SetTimeout(30 * time.Second).R().
		SetQueryParams(map[string]string{
			"amt": amt,
			"scd": esewaMerchantCode(),
			"rid": refId,
			"pid": oid,
		}).
		Get(esewaBaseURL() + "/epay/transrec")

	if err != nil {
		log.Println("eSewa verification error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to verify payment")
		return
	}

	if strings.Contains(strings.ToLower(string(resp.Body())), "success") {
		updates := map[string]any{
			"status":       models.PaymentStatusCompleted,
			"esewa_ref_id": refId,
		}
		if err := initializers.DB.Model(&payment).Updates(updates).Error; err != nil {
			log.Println("Payment update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update payment")
			return
		}

		if err := initializers.DB.Model(&models.Order{}).
			Where("id = ?", orderId).
			Update("status", models.OrderStatusConfirmed).Error; err != nil {
			log.Println("Order update error:", err)
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"transactionId": payment.TransactionID,
			"status":        "SUCCESS",
			"message":       "Payment verified successfully",
		})
		return
	}

	updates := map[string]any{
		"status":         models.PaymentStatusFailed,
		"failure_reason": "eSewa verification failed",
	}
	if err := initializers.DB.Model(&payment).Updates(updates).Error; err != nil {
		log.Println("Payment update error:", err)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"transactionId": payment.TransactionID,
		"status":        "FAILED",
		"message":       "Payment verification failed",
	})
}
