package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/database"
)

func openTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	database.DB = db
}

func seedProduct(t *testing.T, name, category, badge string, rating float64) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Product{
		Name:     name,
		Category: category,
		Price:    100,
		Stock:    5,
		Rating:   rating,
		Badge:    badge,
	}).Error)
}

func TestProductRepository_All_FiltersByCategoryAndSearch(t *testing.T) {
	openTestDB(t)
	seedProduct(t, "Rooibos Tea 40 Bags", "food", "", 4.5)
	seedProduct(t, "Biltong 250g", "food", "", 4.2)
	seedProduct(t, "Cement 50kg", "building", "", 4.0)

	repo := repositories.NewProductRepository()

	products, pagination, err := repo.All("food", "", 1, 20)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(2), pagination.Total)

	products, _, err = repo.All("", "rooibos", 1, 20)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Rooibos Tea 40 Bags", products[0].Name)
}

func TestProductRepository_Featured_SharesOneDatasetAcrossLimits(t *testing.T) {
	openTestDB(t)
	seedProduct(t, "Rooibos Tea 40 Bags", "food", "Best Seller", 4.8)
	seedProduct(t, "Biltong 250g", "food", "Popular", 4.5)
	seedProduct(t, "Cement 50kg", "building", "Top Rated", 4.2)
	seedProduct(t, "Work Gloves", "building", "", 4.9) // no badge, never featured

	repo := repositories.NewProductRepository()

	// The limit is applied after the shared query, so any limit sees the
	// same ordered set and one invalidation key covers them all.
	top2, err := repo.Featured(2)
	require.NoError(t, err)
	require.Len(t, top2, 2)
	assert.Equal(t, "Rooibos Tea 40 Bags", top2[0].Name)
	assert.Equal(t, "Biltong 250g", top2[1].Name)

	all, err := repo.Featured(10)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "products:featured", repositories.FeaturedCacheKey)
}
