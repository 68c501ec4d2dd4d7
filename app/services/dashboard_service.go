package services

import (
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/charts"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/orm"
)

// DashboardStats is the headline card row on the seller dashboard.
// Formatted fields carry the display strings so the client renders
// them verbatim.
type DashboardStats struct {
	PendingOrders   int64  `json:"pending_orders"`
	CompletedOrders int64  `json:"completed_orders"`
	Revenue         string `json:"revenue"`
	ConversionRate  string `json:"conversion_rate"`
}

// DashboardService assembles the seller dashboard: headline stats plus
// demo chart series until real per-seller aggregation lands.
type DashboardService struct {
	orders *repositories.OrderRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{orders: repositories.NewOrderRepository()}
}

// Stats returns the headline numbers. Revenue sums completed orders.
func (s *DashboardService) Stats() (DashboardStats, error) {
	pending, err := s.orders.CountByStatus(models.OrderPending)
	if err != nil {
		return DashboardStats{}, err
	}
	completed, err := s.orders.CountByStatus(models.OrderCompleted)
	if err != nil {
		return DashboardStats{}, err
	}

	var revenue float64
	err = orm.DB().Model(&models.Order{}).
		Where("status = ?", models.OrderCompleted).
		SumColumn("total_amount", &revenue)
	if err != nil {
		return DashboardStats{}, err
	}

	rate := 0.0
	if total := pending + completed; total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return DashboardStats{
		PendingOrders:   pending,
		CompletedOrders: completed,
		Revenue:         charts.FormatCurrency(revenue),
		ConversionRate:  charts.FormatPercentage(rate),
	}, nil
}

// Series produces a demo chart series for the given window.
func (s *DashboardService) Series(granularity string, count int, trend string, min, max float64) []charts.Point {
	g := charts.ParseGranularity(granularity)
	if count < 1 || count > 366 {
		count = 7
	}
	return charts.MockSeries(g, count, charts.SeriesOptions{
		Min:   min,
		Max:   max,
		Trend: charts.Trend(trend),
	}).Collect()
}
