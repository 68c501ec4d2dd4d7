package seeders

import (
	"gorm.io/gorm"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
	Register("sellers", SeedSellers)
	Register("products", SeedProducts)
}

// SeedUsers inserts the demo accounts. Skips silently when users
// already exist so re-running db:seed stays idempotent.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	users := []models.User{
		{FullName: "Thandi Mokoena", Email: "thandi@example.co.za", Password: hash, Role: models.RoleCustomer},
		{FullName: "Sipho Ndlovu", Email: "sipho@ndlovu.co.za", Password: hash, Role: models.RoleSeller},
		{FullName: "Naledi Khumalo", Email: "naledi@khanyisa.co.za", Password: hash, Role: models.RoleSeller},
		{FullName: "Admin", Email: "admin@localconnect.co.za", Password: hash, Role: models.RoleAdmin},
	}
	return db.Create(&users).Error
}

// SeedSellers creates profiles for the seller accounts.
func SeedSellers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Seller{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sellers := []models.Seller{
		{UserID: 2, BusinessName: "Ndlovu Constructions", Category: "Construction", Rating: 4.6, TotalReviews: 128, Verified: true},
		{UserID: 3, BusinessName: "Khanyisa Foods", Category: "Food & Beverage", Rating: 4.8, TotalReviews: 342, Verified: true},
		{UserID: 0, BusinessName: "Mpumelelo Traders", Category: "Wholesale", Rating: 4.3, TotalReviews: 87},
	}
	return db.Create(&sellers).Error
}

// SeedProducts fills the catalogue with the demo listings.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{SellerID: 1, Name: "Cement 50kg", Category: "Construction", Price: 129.99, Stock: 400, Rating: 4.5, TotalReviews: 61},
		{SellerID: 1, Name: "Face Brick Pallet", Category: "Construction", Price: 4850, Stock: 25, Rating: 4.7, TotalReviews: 19, Badge: "Bulk Deal"},
		{SellerID: 2, Name: "Rooibos Tea 40 Bags", Category: "Food & Beverage", Price: 54.5, Stock: 900, Rating: 4.9, TotalReviews: 210, Badge: "Best Seller"},
		{SellerID: 2, Name: "Biltong 250g", Category: "Food & Beverage", Price: 89, Stock: 300, Rating: 4.8, TotalReviews: 164},
		{SellerID: 2, Name: "Chakalaka Tin 410g", Category: "Food & Beverage", Price: 22.99, Stock: 1200, Rating: 4.4, TotalReviews: 98},
		{SellerID: 3, Name: "Maize Meal 10kg", Category: "Wholesale", Price: 115, Stock: 600, Rating: 4.2, TotalReviews: 45},
		{SellerID: 3, Name: "Cooking Oil 5L", Category: "Wholesale", Price: 189.99, Stock: 150, Rating: 4.3, TotalReviews: 73, Badge: "Popular"},
	}
	return db.Create(&products).Error
}
