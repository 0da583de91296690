package services

import (
	"errors"
	"fmt"
	"time"

	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"gorm.io/gorm"
)

type CreatePaymentInput struct {
	OrderID uint       `json:"order_id" binding:"required"`
	Amount  float64    `json:"amount" binding:"required"`
	Method  string     `json:"method" binding:"required"`
	Date    *time.Time `json:"date"`
}

type UpdatePaymentInput struct {
	Amount float64    `json:"amount" binding:"required"`
	Method string     `json:"method" binding:"required"`
	Date   *time.Time `json:"date"`
}

// PaymentService keeps the sum of recognized (pending or completed) payments
// for an order within the order's total and mirrors that sum into the order
// status: the payment that reaches the total exactly is completed and flips
// the order to accepted, anything less stays pending.
type PaymentService interface {
	CreatePayment(input CreatePaymentInput) (*models.Payment, error)
	GetPaymentByID(id uint) (*models.Payment, error)
	GetAllPayments() ([]*models.Payment, error)
	GetPaymentsByOrder(orderID uint) ([]*models.Payment, error)
	GetPaymentsByStatus(status string) ([]*models.Payment, error)
	UpdatePayment(id uint, input UpdatePaymentInput) (*models.Payment, error)
	DeletePayment(id uint) error
	RefundPayment(id uint) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	orderLocks  *AggregateLocks
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository, orderLocks *AggregateLocks) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo, orderLocks: orderLocks}
}

func (s *paymentService) CreatePayment(input CreatePaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !validPaymentMethod(input.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, input.Method)
	}

	s.orderLocks.Lock(input.OrderID)
	defer s.orderLocks.Unlock(input.OrderID)

	order, err := s.orderRepo.GetByID(input.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.Status == string(models.OrderCanceled) {
		return nil, ErrOrderCanceled
	}

	paidSoFar, err := s.recognizedTotal(order.ID, 0)
	if err != nil {
		return nil, err
	}
	if paidSoFar+input.Amount > order.TotalAmount {
		return nil, fmt.Errorf("%w: %.2f paid, %.2f offered, order total %.2f",
			ErrPaymentExceedsTotal, paidSoFar, input.Amount, order.TotalAmount)
	}

	status := models.PaymentPending
	if paidSoFar+input.Amount == order.TotalAmount {
		status = models.PaymentCompleted
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}
	payment := &models.Payment{
		OrderID: order.ID,
		Amount:  input.Amount,
		Date:    date,
		Method:  input.Method,
		Status:  string(status),
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	if err := reconcileOrderStatus(s.orderRepo, s.paymentRepo, order); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) GetAllPayments() ([]*models.Payment, error) {
	return s.paymentRepo.GetAll()
}

func (s *paymentService) GetPaymentsByOrder(orderID uint) ([]*models.Payment, error) {
	return s.paymentRepo.GetByOrderID(orderID)
}

func (s *paymentService) GetPaymentsByStatus(status string) ([]*models.Payment, error) {
	switch models.PaymentStatus(status) {
	case models.PaymentPending, models.PaymentCompleted, models.PaymentRefunded:
	default:
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}
	return s.paymentRepo.GetByStatus(status)
}

func (s *paymentService) UpdatePayment(id uint, input UpdatePaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if !validPaymentMethod(input.Method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, input.Method)
	}

	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status == string(models.PaymentRefunded) {
		return nil, fmt.Errorf("%w: refunded payments cannot be updated", ErrInvalidState)
	}

	s.orderLocks.Lock(payment.OrderID)
	defer s.orderLocks.Unlock(payment.OrderID)

	order, err := s.orderRepo.GetByID(payment.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	paidSoFar, err := s.recognizedTotal(order.ID, payment.ID)
	if err != nil {
		return nil, err
	}
	if paidSoFar+input.Amount > order.TotalAmount {
		return nil, fmt.Errorf("%w: %.2f paid, %.2f offered, order total %.2f",
			ErrPaymentExceedsTotal, paidSoFar, input.Amount, order.TotalAmount)
	}

	status := models.PaymentPending
	if paidSoFar+input.Amount == order.TotalAmount {
		status = models.PaymentCompleted
	}

	payment.Amount = input.Amount
	payment.Method = input.Method
	if input.Date != nil {
		payment.Date = *input.Date
	}
	payment.Status = string(status)
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	if err := reconcileOrderStatus(s.orderRepo, s.paymentRepo, order); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) DeletePayment(id uint) error {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}

	s.orderLocks.Lock(payment.OrderID)
	defer s.orderLocks.Unlock(payment.OrderID)

	if err := s.paymentRepo.Delete(id); err != nil {
		return err
	}

	order, err := s.orderRepo.GetByID(payment.OrderID)
	if err != nil {
		// The order may already be gone when called from a cascade.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return reconcileOrderStatus(s.orderRepo, s.paymentRepo, order)
}

// RefundPayment flips a completed payment to refunded. The refunded amount is
// no longer recognized, so the order status is recomputed the same way a
// deletion recomputes it.
func (s *paymentService) RefundPayment(id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status != string(models.PaymentCompleted) {
		return nil, fmt.Errorf("%w: only completed payments can be refunded", ErrInvalidState)
	}

	s.orderLocks.Lock(payment.OrderID)
	defer s.orderLocks.Unlock(payment.OrderID)

	payment.Status = string(models.PaymentRefunded)
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(payment.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment, nil
		}
		return nil, err
	}
	if err := reconcileOrderStatus(s.orderRepo, s.paymentRepo, order); err != nil {
		return nil, err
	}
	return payment, nil
}

// recognizedTotal sums pending and completed payments for an order, skipping
// excludeID when recomputing around an updated payment.
func (s *paymentService) recognizedTotal(orderID, excludeID uint) (float64, error) {
	payments, err := s.paymentRepo.GetByOrderID(orderID)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, p := range payments {
		if p.ID == excludeID {
			continue
		}
		if p.Status == string(models.PaymentPending) || p.Status == string(models.PaymentCompleted) {
			total += p.Amount
		}
	}
	return total, nil
}

// reconcileOrderStatus recomputes pending/accepted from the recognized payment
// total. Delivered and canceled orders are never touched by payment activity.
func reconcileOrderStatus(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository, order *models.Order) error {
	if order.Status != string(models.OrderPending) && order.Status != string(models.OrderAccepted) {
		return nil
	}

	payments, err := paymentRepo.GetByOrderID(order.ID)
	if err != nil {
		return err
	}
	recognized := 0.0
	for _, p := range payments {
		if p.Status == string(models.PaymentPending) || p.Status == string(models.PaymentCompleted) {
			recognized += p.Amount
		}
	}

	newStatus := string(models.OrderPending)
	if order.TotalAmount > 0 && recognized >= order.TotalAmount {
		newStatus = string(models.OrderAccepted)
	}
	if order.Status != newStatus {
		order.Status = newStatus
		return orderRepo.Update(order)
	}
	return nil
}

func validPaymentMethod(method string) bool {
	switch models.PaymentMethod(method) {
	case models.MethodCash, models.MethodCreditCard, models.MethodDebitCard, models.MethodBankTransfer:
		return true
	}
	return false
}
