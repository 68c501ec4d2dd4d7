package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/validate"
	"gorm.io/gorm"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// Get returns the session's cart with its live total.
func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.service.Get(sessionID(r)))
}

type addToCartRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"required,min=1"`
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var body addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	summary, err := c.service.Add(sessionID(r), body.ProductID, body.Quantity)
	if err != nil {
		c.writeCartError(w, err)
		return
	}
	response.Success(w, summary)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (c *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := uintParam(r, "productID")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var body updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	summary, err := c.service.UpdateQuantity(sessionID(r), productID, body.Quantity)
	if err != nil {
		c.writeCartError(w, err)
		return
	}
	response.Success(w, summary)
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	productID, ok := uintParam(r, "productID")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}
	response.Success(w, c.service.Remove(sessionID(r), productID))
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.service.Clear(sessionID(r)))
}

func (c *CartController) writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidQuantity):
		response.Error(w, http.StatusUnprocessableEntity, "quantity must be at least 1")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(w)
	default:
		response.Error(w, http.StatusInternalServerError, "cart operation failed")
	}
}
