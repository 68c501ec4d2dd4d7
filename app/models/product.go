package models

import "gorm.io/gorm"

// Product represents a product in the mock catalogue. Cart lines embed a
// snapshot of the product as it looked at add-to-cart time.
type Product struct {
	gorm.Model
	SellerID     uint    `gorm:"index"                  json:"seller_id"`
	Name         string  `gorm:"size:255;not null;index" json:"name"`
	Description  string  `gorm:"type:text"              json:"description"`
	Category     string  `gorm:"size:100;index"         json:"category"`
	Price        float64 `gorm:"not null;default:0"     json:"price"`
	ImageURL     string  `gorm:"size:512"               json:"image_url"`
	Stock        int     `gorm:"not null;default:0"     json:"stock"`
	Rating       float64 `gorm:"default:0"              json:"rating"`
	TotalReviews int     `gorm:"default:0"              json:"total_reviews"`
	Badge        string  `gorm:"size:50"                json:"badge,omitempty"`
}

// Seller is a seller profile attached to a promoted user.
type Seller struct {
	gorm.Model
	UserID       uint    `gorm:"uniqueIndex"    json:"user_id"`
	BusinessName string  `gorm:"size:255;not null" json:"business_name"`
	Category     string  `gorm:"size:100"       json:"category"`
	Description  string  `gorm:"type:text"      json:"description"`
	Rating       float64 `gorm:"default:0"      json:"rating"`
	TotalReviews int     `gorm:"default:0"      json:"total_reviews"`
	Verified     bool    `gorm:"default:false"  json:"verified"`
}
