package services

import (
	"encoding/json"
	"errors"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/event"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/logger"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/metrics"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/workerpool"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/ws"
)

var ErrEmptyCart = errors.New("services: cart is empty")

// CheckoutService turns a session's cart into a mock order. No payment
// provider is involved; the order is recorded pending and the cart is
// cleared.
type CheckoutService struct {
	orders *repositories.OrderRepository
	stores *store.Manager
	pool   *workerpool.Pool
	hub    *ws.Hub
}

func NewCheckoutService(stores *store.Manager, pool *workerpool.Pool, hub *ws.Hub) *CheckoutService {
	return &CheckoutService{
		orders: repositories.NewOrderRepository(),
		stores: stores,
		pool:   pool,
		hub:    hub,
	}
}

// Checkout places an order for everything in the session's cart at the
// prices captured when each line was added, then clears the cart.
func (s *CheckoutService) Checkout(sessionID string, userID uint) (models.Order, error) {
	st := s.stores.For(sessionID)
	lines := st.Lines()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		UserID:      userID,
		TotalAmount: st.CartTotal(),
		Status:      models.OrderPending,
		Items:       make([]models.OrderItem, 0, len(lines)),
	}
	for _, line := range lines {
		price := 0.0
		if line.Product != nil {
			price = line.Product.Price
		}
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     price,
		})
	}

	if err := s.orders.Create(&order); err != nil {
		return models.Order{}, err
	}

	st.ClearCart()
	metrics.CheckoutsTotal.Inc()
	event.FireAsync(event.OrderPlaced, order)
	s.notify(order)

	return order, nil
}

// notify pushes the order onto the dashboard feed off the request
// path. A full pool drops the notification rather than blocking the
// checkout response.
func (s *CheckoutService) notify(order models.Order) {
	if s.pool == nil || s.hub == nil {
		return
	}

	err := s.pool.Submit(func() {
		payload, err := json.Marshal(map[string]interface{}{
			"event":    "order.placed",
			"order_id": order.ID,
			"total":    order.TotalAmount,
		})
		if err != nil {
			logger.Error("checkout: marshal order notification", "error", err)
			return
		}
		s.hub.Broadcast <- payload
	})
	if err != nil {
		logger.Warn("checkout: notification dropped", "order_id", order.ID, "error", err)
	}
}
