package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/socksbox/socksbox-api/initializers"
	"github.com/socksbox/socksbox-api/models"
	"github.com/socksbox/socksbox-api/routes"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest gives every test its own in-memory database and a router with
// all route groups registered.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect to test database: ", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Brand{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductColor{},
		&models.ProductSize{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Company{},
	); err != nil {
		t.Fatal("failed to migrate test database: ", err)
	}

	initializers.DB = db

	router := gin.New()
	routes.DefaultRoutes(router)
	routes.AuthRoutes(router)
	routes.ProductRoutes(router)
	routes.CatalogRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.PaymentRoutes(router)
	routes.AdminRoutes(router)
	routes.CompanyRoutes(router)
	return router
}

// createUser inserts a user row with a hashed password and returns it.
func createUser(t *testing.T, name, email, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	if err := initializers.DB.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	return user
}

// tokenFor signs a JWT matching what the auth middleware expects.
func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func createProduct(t *testing.T, name string, price float64, inventory int) models.Product {
	t.Helper()

	product := models.Product{
		Name:      name,
		Price:     price,
		Inventory: inventory,
		Active:    true,
		MainImage: "https://img.example.com/" + name + ".jpg",
	}
	if err := initializers.DB.Create(&product).Error; err != nil {
		t.Fatal(err)
	}
	return product
}

// doRequest performs a JSON request against the router, optionally authenticated.
func doRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type cartItemPayload struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
}

type cartPayload struct {
	Cart struct {
		ID          uint              `json:"id"`
		UserID      uint              `json:"userId"`
		Items       []cartItemPayload `json:"items"`
		TotalAmount float64           `json:"totalAmount"`
		ItemCount   int               `json:"itemCount"`
	} `json:"cart"`
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartPayload {
	t.Helper()

	var payload cartPayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatal("failed to decode cart response: ", err)
	}
	return payload
}
