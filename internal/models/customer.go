package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is embedded into Customer rows.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type Customer struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	NIF         string         `json:"nif" gorm:"unique;not null"`
	Name        string         `json:"name" gorm:"not null"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	Address     Address        `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
