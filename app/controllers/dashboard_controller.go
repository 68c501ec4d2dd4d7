package controllers

import (
	"net/http"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/ws"
)

type DashboardController struct {
	service *services.DashboardService
	hub     *ws.Hub
}

func NewDashboardController(service *services.DashboardService, hub *ws.Hub) *DashboardController {
	return &DashboardController{service: service, hub: hub}
}

func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.Stats()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load dashboard stats")
		return
	}
	response.Success(w, stats)
}

// Series returns a demo chart series shaped by granularity, count and
// trend query parameters.
func (c *DashboardController) Series(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	points := c.service.Series(
		q.Get("granularity"),
		queryInt(r, "count", 7),
		q.Get("trend"),
		queryFloat(r, "min", 0),
		queryFloat(r, "max", 0),
	)
	response.Success(w, points)
}

// Feed upgrades to a websocket pushing live order events.
func (c *DashboardController) Feed(w http.ResponseWriter, r *http.Request) {
	ws.Upgrade(w, r, c.hub)
}
