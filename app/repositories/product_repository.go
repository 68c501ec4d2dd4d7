package repositories

import (
	"strings"
	"time"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindByID looks up a product by primary key.
func (r *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// All returns one page of products, optionally filtered by category and a
// case-insensitive name search.
func (r *ProductRepository) All(category, search string, page, perPage int) ([]models.Product, orm.Pagination, error) {
	var products []models.Product
	q := orm.DB().Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("lower(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	pagination, err := q.Paginate(page, perPage, &products)
	return products, pagination, err
}

// BySeller returns all products listed by a seller.
func (r *ProductRepository) BySeller(sellerID uint) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Where("seller_id = ?", sellerID).Get(&products)
	return products, err
}

// FeaturedCacheKey caches the full badge-carrying product list; the limit is
// applied after the cache so every limit shares one entry and one
// invalidation.
const FeaturedCacheKey = "products:featured"

// Featured returns the top-rated products, cached briefly since the
// home page hammers this query.
func (r *ProductRepository) Featured(limit int) ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).
		Where("badge <> ''").
		Order("rating desc").
		Cache(FeaturedCacheKey, 5*time.Minute, &products)
	if err != nil {
		return nil, err
	}
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}
