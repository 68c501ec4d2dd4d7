package models

import "gorm.io/gorm"

// Marketplace roles. A customer may be promoted to seller in place;
// id and email never change during promotion.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User is the primary user model.
type User struct {
	gorm.Model
	FullName  string `gorm:"size:255;not null"           json:"full_name"`
	Email     string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string `gorm:"size:255;not null"           json:"-"` // hashed, never serialised
	Role      string `gorm:"size:50;default:customer"    json:"role"`
	AvatarURL string `gorm:"size:512"                    json:"avatar_url,omitempty"`
}

// ValidRole reports whether role is one of the marketplace roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}
