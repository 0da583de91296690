package models

import (
	"time"

	"gorm.io/gorm"
)

// Jewelry is a single-table variant record: Type selects which of the
// type-specific fields (Size, Length, ClaspType) must be set.
type Jewelry struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Type          string         `json:"type" gorm:"not null"` // ring, necklace, earring
	Name          string         `json:"name" gorm:"not null"`
	Material      string         `json:"material" gorm:"not null"`
	Weight        float64        `json:"weight" gorm:"not null"`
	Price         float64        `json:"price" gorm:"not null"`
	StockQuantity int            `json:"stock_quantity" gorm:"not null"`
	Category      string         `json:"category" gorm:"not null"` // luxury, classic, casual
	Size          *string        `json:"size,omitempty"`           // ring only
	Length        *float64       `json:"length,omitempty"`         // necklace only
	ClaspType     *string        `json:"clasp_type,omitempty"`     // earring only
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type JewelryType string

const (
	JewelryRing     JewelryType = "ring"
	JewelryNecklace JewelryType = "necklace"
	JewelryEarring  JewelryType = "earring"
)

type JewelryCategory string

const (
	CategoryLuxury  JewelryCategory = "luxury"
	CategoryClassic JewelryCategory = "classic"
	CategoryCasual  JewelryCategory = "casual"
)
