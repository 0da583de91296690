package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"not null;index"`
	Amount    float64        `json:"amount" gorm:"not null"`
	Date      time.Time      `json:"date" gorm:"not null"`
	Method    string         `json:"method" gorm:"not null"`          // cash, credit_card, debit_card, bank_transfer
	Status    string         `json:"status" gorm:"default:'pending'"` // pending, completed, refunded
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodDebitCard    PaymentMethod = "debit_card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)
