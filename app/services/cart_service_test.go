package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	stpkg "github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/storage"
)

type stubFinder map[uint]models.Product

func (f stubFinder) FindByID(id uint) (models.Product, error) {
	p, ok := f[id]
	if !ok {
		return models.Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func newCartService() *services.CartService {
	finder := stubFinder{
		1: {Model: gorm.Model{ID: 1}, Name: "Rooibos Tea 40 Bags", Price: 54.5, Stock: 900},
		2: {Model: gorm.Model{ID: 2}, Name: "Biltong 250g", Price: 89, Stock: 300},
	}
	stores := store.NewManager("local-connect-sa-store", stpkg.NewMemory())
	return services.NewCartService(stores, finder)
}

func TestCartService_AddLooksUpProduct(t *testing.T) {
	svc := newCartService()

	summary, err := svc.Add("s1", 1, 2)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "Rooibos Tea 40 Bags", summary.Items[0].Product.Name)
	assert.InDelta(t, 109, summary.Total, 1e-9)

	_, err = svc.Add("s1", 99, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCartService_FullFlow(t *testing.T) {
	svc := newCartService()

	_, err := svc.Add("s1", 1, 1)
	require.NoError(t, err)
	_, err = svc.Add("s1", 2, 3)
	require.NoError(t, err)

	summary, err := svc.UpdateQuantity("s1", 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 143.5, summary.Total, 1e-9)

	summary = svc.Remove("s1", 1)
	require.Len(t, summary.Items, 1)
	assert.InDelta(t, 89, summary.Total, 1e-9)

	summary = svc.Clear("s1")
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc := newCartService()

	_, err := svc.Add("s1", 1, 1)
	require.NoError(t, err)

	assert.Empty(t, svc.Get("s2").Items)
	assert.Len(t, svc.Get("s1").Items, 1)
}

func TestCartService_RejectsBadQuantity(t *testing.T) {
	svc := newCartService()

	_, err := svc.Add("s1", 1, 0)
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)

	_, err = svc.Add("s1", 1, 2)
	require.NoError(t, err)
	_, err = svc.UpdateQuantity("s1", 1, -1)
	assert.ErrorIs(t, err, store.ErrInvalidQuantity)
	assert.Equal(t, 2, svc.Get("s1").Items[0].Quantity)
}
