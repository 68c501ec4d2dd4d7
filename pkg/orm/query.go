// Package orm is a thin fluent layer over gorm with cache-through reads and
// offset pagination for the catalog endpoints.
package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/cache"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/database"
)

type Query struct {
	db *gorm.DB
}

// Pagination is the metadata returned alongside paginated catalog listings.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

func DB() *Query {
	return &Query{db: database.DB}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Create(value interface{}) error {
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	return q.db.Save(value).Error
}

func (q *Query) Count(count *int64) error {
	return q.db.Count(count).Error
}

// SumColumn sums a numeric column over the matched rows. NULL (no
// rows) comes back as 0.
func (q *Query) SumColumn(column string, dest *float64) error {
	return q.db.Select("coalesce(sum(" + column + "), 0)").Scan(dest).Error
}

// Paginate fills dest with one page of results and returns the metadata.
func (q *Query) Paginate(page, perPage int, dest interface{}) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	err := q.db.Offset((page - 1) * perPage).Limit(perPage).Find(dest).Error
	return Pagination{Page: page, PerPage: perPage, Total: total}, err
}

// Cache answers the query from Redis when possible, falling back to the
// database and populating the cache on a miss.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.db.Find(dest).Error; err != nil {
		return err
	}

	cache.Set(key, dest, ttl)
	return nil
}
