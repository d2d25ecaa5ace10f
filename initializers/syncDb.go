package initializers

import (
	"log"

	"github.com/socksbox/socksbox-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
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
	)
	log.Println("Database synced successfully.")
}
