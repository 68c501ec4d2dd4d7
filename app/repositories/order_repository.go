package repositories

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/orm"
)

// OrderRepository handles database operations for Order.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists an order together with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	return orm.DB().Create(order)
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := orm.DB().Model(&models.Order{}).Where("id = ?", id).First(&order)
	return order, err
}

// ByUser returns one page of a user's orders, newest first.
func (r *OrderRepository) ByUser(userID uint, page, perPage int) ([]models.Order, orm.Pagination, error) {
	var orders []models.Order
	pagination, err := orm.DB().Model(&models.Order{}).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Paginate(page, perPage, &orders)
	return orders, pagination, err
}

// CountByStatus tallies orders in a given status, for the dashboard.
func (r *OrderRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := orm.DB().Model(&models.Order{}).Where("status = ?", status).Count(&count)
	return count, err
}
