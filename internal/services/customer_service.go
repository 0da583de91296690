package services

import (
	"errors"
	"fmt"
	"strings"

	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"gorm.io/gorm"
)

type CustomerInput struct {
	NIF         string         `json:"nif" binding:"required"`
	Name        string         `json:"name" binding:"required"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	Address     models.Address `json:"address"`
}

type CustomerService interface {
	CreateCustomer(input CustomerInput) (*models.Customer, error)
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(id uint, input CustomerInput) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orders       OrderService
}

func NewCustomerService(customerRepo repository.CustomerRepository, orders OrderService) CustomerService {
	return &customerService{customerRepo: customerRepo, orders: orders}
}

func (s *customerService) CreateCustomer(input CustomerInput) (*models.Customer, error) {
	if err := validateCustomerInput(input); err != nil {
		return nil, err
	}
	if err := s.checkNIFFree(input.NIF); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(input.Email); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		NIF:         input.NIF,
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) UpdateCustomer(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateCustomerInput(input); err != nil {
		return nil, err
	}
	if customer.NIF != input.NIF {
		if err := s.checkNIFFree(input.NIF); err != nil {
			return nil, err
		}
	}
	if !strings.EqualFold(customer.Email, input.Email) {
		if err := s.checkEmailFree(input.Email); err != nil {
			return nil, err
		}
	}

	customer.NIF = input.NIF
	customer.Name = input.Name
	customer.Email = input.Email
	customer.PhoneNumber = input.PhoneNumber
	customer.Address = input.Address
	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer cascades through the order engine: every order is deleted
// (releasing stock and removing its payments) before the customer record goes.
func (s *customerService) DeleteCustomer(id uint) error {
	if _, err := s.GetCustomerByID(id); err != nil {
		return err
	}
	if err := s.orders.DeleteOrdersByCustomer(id); err != nil {
		return err
	}
	return s.customerRepo.Delete(id)
}

func (s *customerService) checkNIFFree(nif string) error {
	_, err := s.customerRepo.GetByNIF(nif)
	if err == nil {
		return ErrDuplicateNIF
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *customerService) checkEmailFree(email string) error {
	if email == "" {
		return nil
	}
	_, err := s.customerRepo.GetByEmail(email)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, email)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func validateCustomerInput(input CustomerInput) error {
	if len(input.NIF) < 5 || len(input.NIF) > 15 {
		return fmt.Errorf("%w: nif must be 5 to 15 characters", ErrValidation)
	}
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return nil
}
