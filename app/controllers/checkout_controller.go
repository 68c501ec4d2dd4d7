package controllers

import (
	"errors"
	"net/http"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/middleware"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
)

type CheckoutController struct {
	service *services.CheckoutService
}

func NewCheckoutController(service *services.CheckoutService) *CheckoutController {
	return &CheckoutController{service: service}
}

// Checkout places a mock order from the session's cart. Anonymous
// checkouts are allowed; the order then carries user_id 0.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)

	order, err := c.service.Checkout(sessionID(r), userID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			response.Error(w, http.StatusUnprocessableEntity, "cart is empty")
			return
		}
		response.Error(w, http.StatusInternalServerError, "checkout failed")
		return
	}
	response.Created(w, order)
}
