package services

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrJewelryNotFound  = errors.New("jewelry not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrAccountNotFound  = errors.New("account not found")

	ErrDuplicateNIF      = errors.New("nif already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateLineItem = errors.New("duplicate jewelry item in order")

	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrPaymentExceedsTotal = errors.New("payment exceeds the total order amount")
	ErrOrderCanceled       = errors.New("order is canceled")
	ErrInvalidState        = errors.New("invalid state for operation")
	ErrValidation          = errors.New("validation failed")

	ErrJewelryInUse  = errors.New("jewelry is referenced by an order")
	ErrEmployeeInUse = errors.New("employee is referenced by an order")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
