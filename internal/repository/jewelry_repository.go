package repository

import (
	"jewelry_store/internal/models"

	"gorm.io/gorm"
)

type JewelryRepository interface {
	Create(jewelry *models.Jewelry) error
	GetByID(id uint) (*models.Jewelry, error)
	GetByType(jewelryType string) ([]models.Jewelry, error)
	GetByCategory(category string) ([]models.Jewelry, error)
	Update(jewelry *models.Jewelry) error
	Delete(id uint) error
	GetAll() ([]models.Jewelry, error)
}

type jewelryRepository struct {
	db *gorm.DB
}

func NewJewelryRepository(db *gorm.DB) JewelryRepository {
	return &jewelryRepository{db: db}
}

func (r *jewelryRepository) Create(jewelry *models.Jewelry) error {
	return r.db.Create(jewelry).Error
}

func (r *jewelryRepository) GetByID(id uint) (*models.Jewelry, error) {
	var jewelry models.Jewelry
	err := r.db.First(&jewelry, id).Error
	if err != nil {
		return nil, err
	}
	return &jewelry, nil
}

func (r *jewelryRepository) GetByType(jewelryType string) ([]models.Jewelry, error) {
	var items []models.Jewelry
	err := r.db.Where("type = ?", jewelryType).Find(&items).Error
	return items, err
}

func (r *jewelryRepository) GetByCategory(category string) ([]models.Jewelry, error) {
	var items []models.Jewelry
	err := r.db.Where("category = ?", category).Find(&items).Error
	return items, err
}

func (r *jewelryRepository) Update(jewelry *models.Jewelry) error {
	return r.db.Save(jewelry).Error
}

func (r *jewelryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Jewelry{}, id).Error
}

func (r *jewelryRepository) GetAll() ([]models.Jewelry, error) {
	var items []models.Jewelry
	err := r.db.Find(&items).Error
	return items, err
}
