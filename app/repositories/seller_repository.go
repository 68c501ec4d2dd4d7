package repositories

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/orm"
)

// SellerRepository handles database operations for Seller.
type SellerRepository struct{}

func NewSellerRepository() *SellerRepository {
	return &SellerRepository{}
}

// FindByID looks up a seller by primary key.
func (r *SellerRepository) FindByID(id uint) (models.Seller, error) {
	var seller models.Seller
	err := orm.DB().Model(&models.Seller{}).Where("id = ?", id).First(&seller)
	return seller, err
}

// FindByUserID looks up the seller profile attached to a user account.
func (r *SellerRepository) FindByUserID(userID uint) (models.Seller, error) {
	var seller models.Seller
	err := orm.DB().Model(&models.Seller{}).Where("user_id = ?", userID).First(&seller)
	return seller, err
}

// Create persists a new seller profile.
func (r *SellerRepository) Create(seller *models.Seller) error {
	return orm.DB().Create(seller)
}

// All returns one page of sellers.
func (r *SellerRepository) All(page, perPage int) ([]models.Seller, orm.Pagination, error) {
	var sellers []models.Seller
	pagination, err := orm.DB().Model(&models.Seller{}).Paginate(page, perPage, &sellers)
	return sellers, pagination, err
}
