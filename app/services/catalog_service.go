package services

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/orm"
)

// CatalogService serves the read-only product and seller catalogue.
type CatalogService struct {
	products *repositories.ProductRepository
	sellers  *repositories.SellerRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products: repositories.NewProductRepository(),
		sellers:  repositories.NewSellerRepository(),
	}
}

// Products returns one page of the catalogue, optionally narrowed to a
// category and a name search.
func (s *CatalogService) Products(category, search string, page, perPage int) ([]models.Product, orm.Pagination, error) {
	return s.products.All(category, search, page, perPage)
}

// Product returns a single product by id.
func (s *CatalogService) Product(id uint) (models.Product, error) {
	return s.products.FindByID(id)
}

// Featured returns the badge-carrying products for the home page.
func (s *CatalogService) Featured(limit int) ([]models.Product, error) {
	return s.products.Featured(limit)
}

// Sellers returns one page of seller profiles.
func (s *CatalogService) Sellers(page, perPage int) ([]models.Seller, orm.Pagination, error) {
	return s.sellers.All(page, perPage)
}

// Seller returns a single seller profile by id.
func (s *CatalogService) Seller(id uint) (models.Seller, error) {
	return s.sellers.FindByID(id)
}
