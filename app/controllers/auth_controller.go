package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/services"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/store"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/middleware"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/response"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/validate"
)

type AuthController struct {
	service *services.AuthService
	stores  *store.Manager
}

func NewAuthController(stores *store.Manager) *AuthController {
	return &AuthController{
		service: services.NewAuthService(),
		stores:  stores,
	}
}

type signupRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var body signupRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Signup(body.FullName, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(w, http.StatusConflict, "email already registered")
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not create account")
		return
	}

	c.stores.For(sessionID(r)).SetUser(&user)
	response.Created(w, map[string]interface{}{"user": user, "token": token})
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.service.Login(body.Email, body.Password)
	if err != nil {
		response.Unauthorized(w)
		return
	}

	c.stores.For(sessionID(r)).SetUser(&user)
	response.Success(w, map[string]interface{}{"user": user, "token": token})
}

// Logout clears the session's user. The cart is left as is.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.stores.For(sessionID(r)).Logout()
	response.Success(w, nil)
}

// Me returns the session's active user.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := c.stores.For(sessionID(r)).User()
	if user == nil {
		response.Unauthorized(w)
		return
	}
	response.Success(w, user)
}

type becomeSellerRequest struct {
	BusinessName string `json:"business_name" validate:"required,min=2,max=255"`
	Category     string `json:"category"      validate:"max=100"`
}

// BecomeSeller promotes the authenticated customer to a seller.
func (c *AuthController) BecomeSeller(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body becomeSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validate.Struct(body); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.BecomeSeller(userID, body.BusinessName, body.Category)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySeller) {
			response.Error(w, http.StatusConflict, "already a seller")
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not promote account")
		return
	}

	// Promote in place on the session too, keeping id and email.
	c.stores.For(sessionID(r)).UpdateUserRole(user.Role)
	response.Success(w, user)
}
