package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

const slot = "local-connect-sa-store"

func product(id uint, price float64) models.Product {
	return models.Product{
		Model: gorm.Model{ID: id},
		Name:  "Rooibos Gift Box",
		Price: price,
		Stock: 10,
	}
}

func customer(id uint) *models.User {
	return &models.User{
		Model:    gorm.Model{ID: id},
		FullName: "Thandi Mokoena",
		Email:    "thandi@example.co.za",
		Role:     models.RoleCustomer,
	}
}

func TestAddToCart_MergesSameProduct(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	require.NoError(t, s.AddToCart(product(1, 150), 2))
	require.NoError(t, s.AddToCart(product(1, 150), 3))

	lines := s.Lines()
	require.Len(t, lines, 1, "same product must never produce two lines")
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddToCart_AppendsInInsertionOrder(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	require.NoError(t, s.AddToCart(product(3, 10), 1))
	require.NoError(t, s.AddToCart(product(1, 20), 1))
	require.NoError(t, s.AddToCart(product(2, 30), 1))

	lines := s.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, uint(3), lines[0].ProductID)
	assert.Equal(t, uint(1), lines[1].ProductID)
	assert.Equal(t, uint(2), lines[2].ProductID)

	// Line ids are unique and increasing.
	assert.Less(t, lines[0].ID, lines[1].ID)
	assert.Less(t, lines[1].ID, lines[2].ID)
}

func TestAddToCart_RejectsNonPositiveQuantity(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	assert.ErrorIs(t, s.AddToCart(product(1, 100), 0), store.ErrInvalidQuantity)
	assert.ErrorIs(t, s.AddToCart(product(1, 100), -4), store.ErrInvalidQuantity)
	assert.Equal(t, 0, s.Len())
}

func TestAddToCart_EmbedsProductSnapshot(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	p := product(1, 199.99)
	require.NoError(t, s.AddToCart(p, 1))

	// Mutating the caller's copy must not reach the embedded snapshot.
	p.Price = 5

	lines := s.Lines()
	require.NotNil(t, lines[0].Product)
	assert.Equal(t, 199.99, lines[0].Product.Price)
}

func TestLines_ReturnsDetachedCopies(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	require.NoError(t, s.AddToCart(product(1, 100), 2))

	// Writing through a returned line's snapshot must not reach the store.
	lines := s.Lines()
	lines[0].Product.Price = 1
	lines[0].Quantity = 99

	assert.InDelta(t, 200, s.CartTotal(), 1e-9)
	fresh := s.Lines()
	assert.Equal(t, 100.0, fresh[0].Product.Price)
	assert.Equal(t, 2, fresh[0].Quantity)
}

func TestAddToCart_RecordsUserID(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	require.NoError(t, s.AddToCart(product(1, 10), 1))
	s.SetUser(customer(42))
	require.NoError(t, s.AddToCart(product(2, 10), 1))

	lines := s.Lines()
	assert.Equal(t, uint(0), lines[0].UserID, "anonymous line carries user_id 0")
	assert.Equal(t, uint(42), lines[1].UserID)
}

func TestCartTotal(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	require.NoError(t, s.AddToCart(product(1, 150), 2))  // 300
	require.NoError(t, s.AddToCart(product(2, 49.5), 4)) // 198
	assert.InDelta(t, 498, s.CartTotal(), 1e-9)

	require.NoError(t, s.UpdateCartQuantity(2, 1)) // 150 + 49.5
	assert.InDelta(t, 199.5, s.CartTotal(), 1e-9)

	s.RemoveFromCart(1)
	assert.InDelta(t, 49.5, s.CartTotal(), 1e-9)

	s.RemoveFromCart(2)
	assert.Zero(t, s.CartTotal(), "removing the last line yields total 0")
}

func TestCartTotal_MissingSnapshotCountsAsZero(t *testing.T) {
	blobs := storage.NewMemory()
	// A line without an embedded product, as an older snapshot might hold.
	require.NoError(t, blobs.Put(slot, []byte(`{"user":null,"cart_items":[{"id":1,"user_id":0,"product_id":9,"quantity":3}]}`)))

	s := store.New(slot, blobs)
	assert.Equal(t, 1, s.Len())
	assert.Zero(t, s.CartTotal())
}

func TestUpdateCartQuantity(t *testing.T) {
	s := store.New(slot, storage.NewMemory())
	require.NoError(t, s.AddToCart(product(1, 100), 2))

	require.NoError(t, s.UpdateCartQuantity(1, 7))
	assert.Equal(t, 7, s.Lines()[0].Quantity)

	// Below 1 is rejected, not applied.
	assert.ErrorIs(t, s.UpdateCartQuantity(1, 0), store.ErrInvalidQuantity)
	assert.Equal(t, 7, s.Lines()[0].Quantity)

	// Unknown product is a no-op.
	require.NoError(t, s.UpdateCartQuantity(999, 3))
	assert.Equal(t, 1, s.Len())
}

func TestRemoveFromCart_AbsentIsNoop(t *testing.T) {
	s := store.New(slot, storage.NewMemory())
	require.NoError(t, s.AddToCart(product(1, 10), 1))

	s.RemoveFromCart(999)
	assert.Equal(t, 1, s.Len())
}

func TestClearCart(t *testing.T) {
	s := store.New(slot, storage.NewMemory())
	require.NoError(t, s.AddToCart(product(1, 10), 1))
	require.NoError(t, s.AddToCart(product(2, 20), 1))

	s.ClearCart()
	assert.Equal(t, 0, s.Len())
	assert.Zero(t, s.CartTotal())
}

func TestSetUserAndLogout(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	s.SetUser(customer(7))
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "thandi@example.co.za", s.User().Email)

	require.NoError(t, s.AddToCart(product(1, 10), 1))

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	// Cart survives logout; the line keeps the id it was added under.
	require.Equal(t, 1, s.Len())
	assert.Equal(t, uint(7), s.Lines()[0].UserID)
}

func TestUpdateUserRole(t *testing.T) {
	s := store.New(slot, storage.NewMemory())

	// Anonymous session: promotion is a no-op.
	s.UpdateUserRole(models.RoleSeller)
	assert.Nil(t, s.User())

	u := customer(7)
	s.SetUser(u)
	s.UpdateUserRole(models.RoleSeller)

	got := s.User()
	require.NotNil(t, got)
	assert.Equal(t, models.RoleSeller, got.Role)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)
	assert.Equal(t, u.CreatedAt, got.CreatedAt)
}

func TestSnapshotRoundTrip(t *testing.T) {
	blobs := storage.NewMemory()

	s := store.New(slot, blobs)
	s.SetUser(customer(7))
	require.NoError(t, s.AddToCart(product(1, 150), 2))
	require.NoError(t, s.AddToCart(product(2, 49.5), 1))

	// A fresh store over the same slot sees identical state.
	re := store.New(slot, blobs)
	assert.Equal(t, s.User(), re.User())
	assert.Equal(t, s.Lines(), re.Lines())
	assert.Equal(t, s.CartTotal(), re.CartTotal())
	assert.True(t, re.IsAuthenticated())
}

func TestRehydrate_LineIDsStayUnique(t *testing.T) {
	blobs := storage.NewMemory()

	s := store.New(slot, blobs)
	require.NoError(t, s.AddToCart(product(1, 10), 1))
	require.NoError(t, s.AddToCart(product(2, 10), 1))
	maxID := s.Lines()[1].ID

	re := store.New(slot, blobs)
	require.NoError(t, re.AddToCart(product(3, 10), 1))
	assert.Greater(t, re.Lines()[2].ID, maxID)
}

func TestRehydrate_CorruptSnapshotStartsEmpty(t *testing.T) {
	blobs := storage.NewMemory()
	require.NoError(t, blobs.Put(slot, []byte("{not json")))

	s := store.New(slot, blobs)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.IsAuthenticated())

	// And the store is usable afterwards.
	require.NoError(t, s.AddToCart(product(1, 10), 1))
	assert.Equal(t, 1, s.Len())
}

func TestManager_SeparatesSessions(t *testing.T) {
	m := store.NewManager(slot, storage.NewMemory())

	a := m.For("session-a")
	b := m.For("session-b")
	require.NoError(t, a.AddToCart(product(1, 10), 1))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())

	// Same id returns the same store.
	assert.Same(t, a, m.For("session-a"))
	assert.Same(t, m.Default(), m.For(""))
}
