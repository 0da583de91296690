package services

import (
	"errors"
	"fmt"
	"time"

	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"gorm.io/gorm"
)

type EmployeeInput struct {
	NIF       string     `json:"nif" binding:"required"`
	Name      string     `json:"name" binding:"required"`
	Role      string     `json:"role" binding:"required"`
	HireDate  *time.Time `json:"hire_date"`
	Salary    float64    `json:"salary"`
	SalesGoal *float64   `json:"sales_goal"`
}

type EmployeeService interface {
	CreateEmployee(input EmployeeInput) (*models.Employee, error)
	GetEmployeeByID(id uint) (*models.Employee, error)
	GetAllEmployees() ([]models.Employee, error)
	GetEmployeesByRole(role string) ([]models.Employee, error)
	UpdateEmployee(id uint, input EmployeeInput) (*models.Employee, error)
	DeleteEmployee(id uint) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	orderRepo    repository.OrderRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, orderRepo repository.OrderRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo, orderRepo: orderRepo}
}

func (s *employeeService) CreateEmployee(input EmployeeInput) (*models.Employee, error) {
	if err := validateEmployeeInput(input); err != nil {
		return nil, err
	}
	if err := s.checkNIFFree(input.NIF); err != nil {
		return nil, err
	}

	hireDate := time.Now()
	if input.HireDate != nil {
		hireDate = *input.HireDate
	}
	employee := &models.Employee{
		NIF:      input.NIF,
		Name:     input.Name,
		Role:     input.Role,
		HireDate: hireDate,
		Salary:   input.Salary,
	}
	applyRoleFields(employee, input)
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetEmployeeByID(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.employeeRepo.GetAll()
}

func (s *employeeService) GetEmployeesByRole(role string) ([]models.Employee, error) {
	if !validEmployeeRole(role) {
		return nil, fmt.Errorf("%w: unknown employee role %q", ErrValidation, role)
	}
	return s.employeeRepo.GetByRole(role)
}

func (s *employeeService) UpdateEmployee(id uint, input EmployeeInput) (*models.Employee, error) {
	employee, err := s.GetEmployeeByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateEmployeeInput(input); err != nil {
		return nil, err
	}
	if employee.NIF != input.NIF {
		if err := s.checkNIFFree(input.NIF); err != nil {
			return nil, err
		}
	}

	employee.NIF = input.NIF
	employee.Name = input.Name
	employee.Role = input.Role
	employee.Salary = input.Salary
	if input.HireDate != nil {
		employee.HireDate = *input.HireDate
	}
	employee.SalesGoal = nil
	employee.TotalSales = nil
	applyRoleFields(employee, input)
	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) DeleteEmployee(id uint) error {
	if _, err := s.GetEmployeeByID(id); err != nil {
		return err
	}
	orders, err := s.orderRepo.GetByEmployeeID(id)
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		return fmt.Errorf("%w: employee %d", ErrEmployeeInUse, id)
	}
	return s.employeeRepo.Delete(id)
}

func (s *employeeService) checkNIFFree(nif string) error {
	_, err := s.employeeRepo.GetByNIF(nif)
	if err == nil {
		return ErrDuplicateNIF
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func applyRoleFields(employee *models.Employee, input EmployeeInput) {
	switch models.EmployeeRole(input.Role) {
	case models.RoleManager:
		employee.SalesGoal = input.SalesGoal
	case models.RoleSalesperson:
		// Salespersons start tracking sales from zero.
		zero := 0.0
		employee.TotalSales = &zero
	}
}

func validateEmployeeInput(input EmployeeInput) error {
	if len(input.NIF) < 5 || len(input.NIF) > 15 {
		return fmt.Errorf("%w: nif must be 5 to 15 characters", ErrValidation)
	}
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	switch models.EmployeeRole(input.Role) {
	case models.RoleManager:
		if input.SalesGoal == nil {
			return fmt.Errorf("%w: sales goal is required for managers", ErrValidation)
		}
	case models.RoleSalesperson:
	default:
		return fmt.Errorf("%w: unknown employee role %q", ErrValidation, input.Role)
	}
	return nil
}

func validEmployeeRole(role string) bool {
	switch models.EmployeeRole(role) {
	case models.RoleManager, models.RoleSalesperson:
		return true
	}
	return false
}
