// Package store holds the client session state: the signed-in user and the
// shopping cart. It is the only place either may be mutated.
//
// Every mutation synchronously persists a whole-state snapshot to a named
// blob slot, and construction rehydrates from that slot, so a session
// survives restarts. Reads derive from live state and are never cached.
package store

import (
	"errors"
	"sync"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/collection"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

// ErrInvalidQuantity is returned when a cart mutation is given a quantity
// below 1. The state is left untouched.
var ErrInvalidQuantity = errors.New("store: quantity must be at least 1")

// Store is one session's state. Operations are atomic with respect to each
// other; external code cannot reach past them to edit lines or user fields.
type Store struct {
	mu    sync.Mutex
	slot  string
	blobs storage.Blobs

	user          *models.User
	authenticated bool
	lines         []models.CartLine
	nextLineID    uint64
}

// New creates a Store persisted under slot, rehydrating any snapshot already
// there. A missing or corrupt snapshot yields an empty session (anonymous
// user, empty cart) rather than an error.
func New(slot string, blobs storage.Blobs) *Store {
	s := &Store{
		slot:       slot,
		blobs:      blobs,
		nextLineID: 1,
	}
	s.rehydrate()
	return s
}

// ── User ─────────────────────────────────────────────────────────────────────

// SetUser replaces the active user; nil clears it. The authenticated flag
// follows the argument. The caller is expected to have validated the user.
func (s *Store) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		s.user = nil
		s.authenticated = false
	} else {
		cp := *u
		s.user = &cp
		s.authenticated = true
	}
	s.persist()
}

// Logout clears the user. Cart contents deliberately survive logout: lines
// keep the user_id they were added under. See UpdateUserRole for the same
// user mutated in place.
func (s *Store) Logout() {
	s.SetUser(nil)
}

// UpdateUserRole replaces only the role of the active user, preserving id,
// email and creation time. No-op when no user is signed in.
func (s *Store) UpdateUserRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.user.Role = role
	s.persist()
}

// User returns a copy of the active user, or nil for an anonymous session.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// ── Cart ─────────────────────────────────────────────────────────────────────

// AddToCart adds quantity of product to the cart. If a line for the product
// already exists its quantity is incremented; otherwise a new line with a
// fresh id and a snapshot of product is appended, in insertion order.
func (s *Store) AddToCart(product models.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID {
			s.lines[i].Quantity += quantity
			s.persist()
			return nil
		}
	}

	var userID uint
	if s.user != nil {
		userID = s.user.ID
	}

	snapshot := product
	s.lines = append(s.lines, models.CartLine{
		ID:        s.nextLineID,
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   &snapshot,
	})
	s.nextLineID++
	s.persist()
	return nil
}

// RemoveFromCart deletes the line for productID. Removing an absent product
// is a no-op.
func (s *Store) RemoveFromCart(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := collection.Filter(s.lines, func(l models.CartLine) bool {
		return l.ProductID != productID
	})
	if len(kept) == len(s.lines) {
		return
	}
	s.lines = kept
	s.persist()
}

// UpdateCartQuantity sets the line's quantity to exactly quantity.
// A quantity below 1 is rejected with ErrInvalidQuantity instead of leaving
// an invalid line behind. Unknown product ids are a no-op.
func (s *Store) UpdateCartQuantity(productID uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			s.persist()
			return nil
		}
	}
	return nil
}

// ClearCart empties the cart unconditionally (post-checkout).
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// CartTotal returns the live sum of price × quantity across all lines.
// Lines whose product snapshot is missing contribute 0.
func (s *Store) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return collection.SumBy(s.lines, models.CartLine.Subtotal)
}

// Lines returns a copy of the cart in insertion (display) order. Product
// snapshots are copied too, so callers cannot reach back into the store's
// lines through the pointer.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return collection.Map(s.lines, func(l models.CartLine) models.CartLine {
		if l.Product != nil {
			cp := *l.Product
			l.Product = &cp
		}
		return l
	})
}

// Len returns the number of cart lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}
