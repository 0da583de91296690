package repository

import (
	"jewelry_store/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByOrderID(orderID uint) ([]*models.Payment, error)
	GetByStatus(status string) ([]*models.Payment, error)
	Update(payment *models.Payment) error
	Delete(id uint) error
	DeleteByOrderID(orderID uint) error
	GetAll() ([]*models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, id).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) GetByOrderID(orderID uint) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.Where("order_id = ?", orderID).Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) GetByStatus(status string) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.Where("status = ?", status).Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Payment{}, id).Error
}

func (r *paymentRepository) DeleteByOrderID(orderID uint) error {
	return r.db.Where("order_id = ?", orderID).Delete(&models.Payment{}).Error
}

func (r *paymentRepository) GetAll() ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
