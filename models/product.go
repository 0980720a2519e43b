package models

import "time"

// PlaceholderImage is the image path stored for products created without an
// upload. The backing file is shared and must never be deleted.
const PlaceholderImage = "uploads/placeholder.png"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	Image       string    `gorm:"not null" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
