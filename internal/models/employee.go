package models

import (
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	NIF        string         `json:"nif" gorm:"unique;not null"`
	Name       string         `json:"name" gorm:"not null"`
	Role       string         `json:"role" gorm:"not null"` // manager, salesperson
	HireDate   time.Time      `json:"hire_date"`
	Salary     float64        `json:"salary"`
	SalesGoal  *float64       `json:"sales_goal,omitempty"`  // manager only
	TotalSales *float64       `json:"total_sales,omitempty"` // salesperson only
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type EmployeeRole string

const (
	RoleManager     EmployeeRole = "manager"
	RoleSalesperson EmployeeRole = "salesperson"
)
