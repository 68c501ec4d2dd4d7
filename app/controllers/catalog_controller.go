package controllers

import (
	"net/http"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController(service *services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 20)
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	products, pagination, err := c.service.Products(category, search, page, perPage)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load products")
		return
	}
	response.Paginated(w, products, pagination.Page, pagination.PerPage, pagination.Total)
}

func (c *CatalogController) Product(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.service.Product(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}

func (c *CatalogController) Featured(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.Featured(queryInt(r, "limit", 8))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load featured products")
		return
	}
	response.Success(w, products)
}

func (c *CatalogController) Sellers(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 20)

	sellers, pagination, err := c.service.Sellers(page, perPage)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "could not load sellers")
		return
	}
	response.Paginated(w, sellers, pagination.Page, pagination.PerPage, pagination.Total)
}

func (c *CatalogController) Seller(w http.ResponseWriter, r *http.Request) {
	id, ok := uintParam(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid seller id")
		return
	}

	seller, err := c.service.Seller(id)
	if err != nil {
		response.NotFound(w)
		return
	}
	response.Success(w, seller)
}
