package services

import (
	"errors"

	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/models"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/app/repositories"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/auth"
	"github.com/siyabongabrilliantmabuza/local-connect-sa/pkg/event"
)

var (
	ErrInvalidCredentials = errors.New("services: invalid email or password")
	ErrEmailTaken         = errors.New("services: email already registered")
	ErrAlreadySeller      = errors.New("services: user is already a seller")
)

// AuthService implements the mock signup/login flow and the
// customer-to-seller promotion.
type AuthService struct {
	users   *repositories.UserRepository
	sellers *repositories.SellerRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		users:   repositories.NewUserRepository(),
		sellers: repositories.NewSellerRepository(),
	}
}

// Signup registers a new customer and returns the user with a session
// token.
func (s *AuthService) Signup(fullName, email, password string) (models.User, string, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return models.User{}, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		FullName: fullName,
		Email:    email,
		Password: hash,
		Role:     models.RoleCustomer,
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", err
	}

	event.FireAsync(event.UserSignedUp, user)
	return user, token, nil
}

// Login checks credentials and returns the user with a session token.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// BecomeSeller promotes a customer to seller in place and creates
// their seller profile. Id, email and created_at stay as they were.
func (s *AuthService) BecomeSeller(userID uint, businessName, category string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if user.Role == models.RoleSeller {
		return models.User{}, ErrAlreadySeller
	}

	user.Role = models.RoleSeller
	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}

	seller := models.Seller{
		UserID:       user.ID,
		BusinessName: businessName,
		Category:     category,
	}
	if err := s.sellers.Create(&seller); err != nil {
		return models.User{}, err
	}

	event.FireAsync(event.UserPromoted, user)
	return user, nil
}
