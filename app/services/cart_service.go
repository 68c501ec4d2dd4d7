package services

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/event"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/metrics"
)

// ProductFinder supplies read-only product records to the cart. The
// catalogue owns the records; the cart only embeds snapshots.
type ProductFinder interface {
	FindByID(id uint) (models.Product, error)
}

// CartSummary is what cart reads return: the lines in display order
// plus the live total.
type CartSummary struct {
	Items []models.CartLine `json:"items"`
	Total float64           `json:"total"`
}

// CartService fronts the per-session stores for the HTTP layer.
type CartService struct {
	stores   *store.Manager
	products ProductFinder
}

func NewCartService(stores *store.Manager, products ProductFinder) *CartService {
	return &CartService{stores: stores, products: products}
}

func (s *CartService) observe(op string, err error) error {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.CartOperations.WithLabelValues(op, outcome).Inc()
	return err
}

// Add looks up the product and adds it to the session's cart.
func (s *CartService) Add(sessionID string, productID uint, quantity int) (CartSummary, error) {
	product, err := s.products.FindByID(productID)
	if err != nil {
		return CartSummary{}, s.observe("add", err)
	}

	st := s.stores.For(sessionID)
	if err := st.AddToCart(product, quantity); err != nil {
		return CartSummary{}, s.observe("add", err)
	}

	event.FireAsync(event.CartUpdated, sessionID)
	return s.summary(st), s.observe("add", nil)
}

// Remove drops the line for productID, if present.
func (s *CartService) Remove(sessionID string, productID uint) CartSummary {
	st := s.stores.For(sessionID)
	st.RemoveFromCart(productID)

	event.FireAsync(event.CartUpdated, sessionID)
	_ = s.observe("remove", nil)
	return s.summary(st)
}

// UpdateQuantity sets a line's quantity to exactly the given value.
func (s *CartService) UpdateQuantity(sessionID string, productID uint, quantity int) (CartSummary, error) {
	st := s.stores.For(sessionID)
	if err := st.UpdateCartQuantity(productID, quantity); err != nil {
		return CartSummary{}, s.observe("update", err)
	}

	event.FireAsync(event.CartUpdated, sessionID)
	return s.summary(st), s.observe("update", nil)
}

// Clear empties the session's cart.
func (s *CartService) Clear(sessionID string) CartSummary {
	st := s.stores.For(sessionID)
	st.ClearCart()

	event.FireAsync(event.CartUpdated, sessionID)
	_ = s.observe("clear", nil)
	return s.summary(st)
}

// Get returns the cart as it stands.
func (s *CartService) Get(sessionID string) CartSummary {
	return s.summary(s.stores.For(sessionID))
}

func (s *CartService) summary(st *store.Store) CartSummary {
	return CartSummary{Items: st.Lines(), Total: st.CartTotal()}
}
