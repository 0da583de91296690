package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"gorm.io/gorm"
)

type CreateOrderInput struct {
	CustomerID uint       `json:"customer_id" binding:"required"`
	EmployeeID *uint      `json:"employee_id"`
	OrderDate  *time.Time `json:"order_date"`
	Lines      []OrderLine `json:"lines" binding:"required"`
}

type UpdateOrderInput struct {
	Lines      []OrderLine `json:"lines" binding:"required"`
	Status     *string     `json:"status"`
	EmployeeID *uint       `json:"employee_id"`
	OrderDate  *time.Time  `json:"order_date"`
}

type OrderService interface {
	CreateOrder(input CreateOrderInput) (*models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetOrderLines(orderID uint) ([]*models.OrderItem, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByStatus(status string) ([]models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetOrdersByEmployee(employeeID uint) ([]models.Order, error)
	UpdateOrder(id uint, input UpdateOrderInput) (*models.Order, error)
	DeleteOrder(id uint) error
	DeleteOrdersByCustomer(customerID uint) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	paymentRepo   repository.PaymentRepository
	customerRepo  repository.CustomerRepository
	employeeRepo  repository.EmployeeRepository
	jewelryRepo   repository.JewelryRepository
	inventory     InventoryService
	orderLocks    *AggregateLocks
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	paymentRepo repository.PaymentRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	jewelryRepo repository.JewelryRepository,
	inventory InventoryService,
	orderLocks *AggregateLocks,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		paymentRepo:   paymentRepo,
		customerRepo:  customerRepo,
		employeeRepo:  employeeRepo,
		jewelryRepo:   jewelryRepo,
		inventory:     inventory,
		orderLocks:    orderLocks,
	}
}

func (s *orderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	if input.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(*input.EmployeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	if err := s.inventory.Reserve(input.Lines); err != nil {
		return nil, err
	}

	items, total, err := s.priceLines(input.Lines)
	if err != nil {
		releaseOrWarn(s.inventory, input.Lines)
		return nil, err
	}

	orderDate := time.Now()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}
	order := &models.Order{
		CustomerID:  input.CustomerID,
		EmployeeID:  input.EmployeeID,
		OrderDate:   orderDate,
		Status:      string(models.OrderPending),
		TotalAmount: total,
	}
	if err := s.orderRepo.Create(order); err != nil {
		releaseOrWarn(s.inventory, input.Lines)
		return nil, err
	}

	if err := s.writeLines(order.ID, input.Lines, items); err != nil {
		releaseOrWarn(s.inventory, input.Lines)
		if delErr := s.orderItemRepo.DeleteByOrderID(order.ID); delErr != nil {
			log.Printf("Warning: Failed to remove lines of half-written order %d: %v", order.ID, delErr)
		}
		if delErr := s.orderRepo.Delete(order.ID); delErr != nil {
			log.Printf("Warning: Failed to remove half-written order %d: %v", order.ID, delErr)
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrderLines(orderID uint) ([]*models.OrderItem, error) {
	return s.orderItemRepo.GetByOrderID(orderID)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByStatus(status string) ([]models.Order, error) {
	if !validOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	return s.orderRepo.GetByStatus(status)
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomerID(customerID)
}

func (s *orderService) GetOrdersByEmployee(employeeID uint) ([]models.Order, error) {
	return s.orderRepo.GetByEmployeeID(employeeID)
}

// UpdateOrder replaces the order's line set and optionally its status and
// employee. Stock is reconciled against the lines currently holding
// reservations: a canceled order holds none, so reverting one to pending
// re-reserves everything and fails if stock ran out in the meantime.
func (s *orderService) UpdateOrder(id uint, input UpdateOrderInput) (*models.Order, error) {
	s.orderLocks.Lock(id)
	defer s.orderLocks.Unlock(id)

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	targetStatus := order.Status
	if input.Status != nil {
		if !validOrderStatus(*input.Status) {
			return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, *input.Status)
		}
		targetStatus = *input.Status
	}
	if order.Status == string(models.OrderCanceled) && targetStatus != string(models.OrderPending) {
		return nil, ErrOrderCanceled
	}

	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}
	if input.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(*input.EmployeeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrEmployeeNotFound
			}
			return nil, err
		}
	}

	// Lines currently holding stock: none for a canceled order, the stored
	// lines otherwise. The target set is empty when cancelling.
	var reserved []OrderLine
	if order.Status != string(models.OrderCanceled) {
		current, err := s.orderItemRepo.GetByOrderID(id)
		if err != nil {
			return nil, err
		}
		for _, item := range current {
			reserved = append(reserved, OrderLine{JewelryID: item.JewelryID, Quantity: item.Quantity})
		}
	}
	target := input.Lines
	if targetStatus == string(models.OrderCanceled) {
		target = nil
	}

	additions, removals := diffLines(reserved, target)
	if err := s.inventory.Reserve(additions); err != nil {
		return nil, err
	}
	if err := s.inventory.Release(removals); err != nil {
		releaseOrWarn(s.inventory, additions)
		return nil, err
	}

	items, total, err := s.priceLines(input.Lines)
	if err != nil {
		releaseOrWarn(s.inventory, additions)
		if resErr := s.inventory.Reserve(removals); resErr != nil {
			log.Printf("Warning: Failed to restore released stock during order %d rollback: %v", id, resErr)
		}
		return nil, err
	}

	if err := s.orderItemRepo.DeleteByOrderID(id); err != nil {
		return nil, err
	}
	if err := s.writeLines(id, input.Lines, items); err != nil {
		return nil, err
	}

	order.Status = targetStatus
	order.TotalAmount = total
	if input.EmployeeID != nil {
		order.EmployeeID = input.EmployeeID
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	// A changed total can leave the paid-up state behind; re-run the payment
	// reconciliation so pending/accepted reflects the new total.
	if err := reconcileOrderStatus(s.orderRepo, s.paymentRepo, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	s.orderLocks.Lock(id)
	defer s.orderLocks.Unlock(id)
	return s.deleteOrderLocked(id)
}

func (s *orderService) deleteOrderLocked(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	items, err := s.orderItemRepo.GetByOrderID(id)
	if err != nil {
		return err
	}
	// Canceled orders already released their stock.
	if order.Status != string(models.OrderCanceled) {
		lines := make([]OrderLine, 0, len(items))
		for _, item := range items {
			lines = append(lines, OrderLine{JewelryID: item.JewelryID, Quantity: item.Quantity})
		}
		if err := s.inventory.Release(lines); err != nil {
			return err
		}
	}

	if err := s.paymentRepo.DeleteByOrderID(id); err != nil {
		return err
	}
	if err := s.orderItemRepo.DeleteByOrderID(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}

func (s *orderService) DeleteOrdersByCustomer(customerID uint) error {
	orders, err := s.orderRepo.GetByCustomerID(customerID)
	if err != nil {
		return err
	}
	for _, order := range orders {
		s.orderLocks.Lock(order.ID)
		err := s.deleteOrderLocked(order.ID)
		s.orderLocks.Unlock(order.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *orderService) priceLines(lines []OrderLine) ([]*models.Jewelry, float64, error) {
	items := make([]*models.Jewelry, len(lines))
	total := 0.0
	for i, line := range lines {
		item, err := s.jewelryRepo.GetByID(line.JewelryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: id %d", ErrJewelryNotFound, line.JewelryID)
			}
			return nil, 0, err
		}
		items[i] = item
		total += item.Price * float64(line.Quantity)
	}
	return items, total, nil
}

func (s *orderService) writeLines(orderID uint, lines []OrderLine, items []*models.Jewelry) error {
	for i, line := range lines {
		orderItem := &models.OrderItem{
			OrderID:    orderID,
			JewelryID:  line.JewelryID,
			Quantity:   line.Quantity,
			UnitPrice:  items[i].Price,
			TotalPrice: items[i].Price * float64(line.Quantity),
		}
		if err := s.orderItemRepo.Create(orderItem); err != nil {
			return err
		}
	}
	return nil
}

// releaseOrWarn is the compensation path: the caller is already returning an
// error, so a failed release is logged rather than propagated.
func releaseOrWarn(inventory InventoryService, lines []OrderLine) {
	if err := inventory.Release(lines); err != nil {
		log.Printf("Warning: Failed to release reserved stock during rollback: %v", err)
	}
}

func validateLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: order needs at least one line item", ErrValidation)
	}
	seen := make(map[uint]bool, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for jewelry %d", ErrValidation, line.JewelryID)
		}
		if seen[line.JewelryID] {
			return fmt.Errorf("%w: jewelry %d", ErrDuplicateLineItem, line.JewelryID)
		}
		seen[line.JewelryID] = true
	}
	return nil
}

// diffLines computes the per-item quantity deltas between the reserved and
// target line sets: positive deltas become reservations, negative ones
// releases.
func diffLines(reserved, target []OrderLine) (additions, removals []OrderLine) {
	deltas := make(map[uint]int)
	order := make([]uint, 0, len(reserved)+len(target))
	for _, line := range target {
		if _, ok := deltas[line.JewelryID]; !ok {
			order = append(order, line.JewelryID)
		}
		deltas[line.JewelryID] += line.Quantity
	}
	for _, line := range reserved {
		if _, ok := deltas[line.JewelryID]; !ok {
			order = append(order, line.JewelryID)
		}
		deltas[line.JewelryID] -= line.Quantity
	}
	for _, id := range order {
		switch d := deltas[id]; {
		case d > 0:
			additions = append(additions, OrderLine{JewelryID: id, Quantity: d})
		case d < 0:
			removals = append(removals, OrderLine{JewelryID: id, Quantity: -d})
		}
	}
	return additions, removals
}

func validOrderStatus(status string) bool {
	switch models.OrderStatus(status) {
	case models.OrderPending, models.OrderAccepted, models.OrderDelivered, models.OrderCanceled:
		return true
	}
	return false
}
