package services

import (
	"errors"
	"fmt"

	"jewelry_store/internal/cache"
	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"gorm.io/gorm"
)

type JewelryInput struct {
	Type          string   `json:"type" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Material      string   `json:"material" binding:"required"`
	Weight        float64  `json:"weight"`
	Price         float64  `json:"price"`
	StockQuantity int      `json:"stock_quantity"`
	Category      string   `json:"category" binding:"required"`
	Size          *string  `json:"size"`
	Length        *float64 `json:"length"`
	ClaspType     *string  `json:"clasp_type"`
}

type JewelryService interface {
	CreateJewelry(input JewelryInput) (*models.Jewelry, error)
	GetJewelryByID(id uint) (*models.Jewelry, error)
	GetAllJewelry() ([]models.Jewelry, error)
	GetJewelryByType(jewelryType string) ([]models.Jewelry, error)
	GetJewelryByCategory(category string) ([]models.Jewelry, error)
	UpdateJewelry(id uint, input JewelryInput) (*models.Jewelry, error)
	DeleteJewelry(id uint) error
}

type jewelryService struct {
	jewelryRepo   repository.JewelryRepository
	orderItemRepo repository.OrderItemRepository
	catalog       cache.CatalogCache
}

func NewJewelryService(jewelryRepo repository.JewelryRepository, orderItemRepo repository.OrderItemRepository, catalog cache.CatalogCache) JewelryService {
	return &jewelryService{jewelryRepo: jewelryRepo, orderItemRepo: orderItemRepo, catalog: catalog}
}

func (s *jewelryService) CreateJewelry(input JewelryInput) (*models.Jewelry, error) {
	if err := validateJewelryInput(input); err != nil {
		return nil, err
	}

	jewelry := &models.Jewelry{
		Type:          input.Type,
		Name:          input.Name,
		Material:      input.Material,
		Weight:        input.Weight,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Category:      input.Category,
		Size:          input.Size,
		Length:        input.Length,
		ClaspType:     input.ClaspType,
	}
	if err := s.jewelryRepo.Create(jewelry); err != nil {
		return nil, err
	}
	s.invalidateCatalog()
	return jewelry, nil
}

func (s *jewelryService) GetJewelryByID(id uint) (*models.Jewelry, error) {
	if s.catalog != nil {
		if item, err := s.catalog.GetJewelry(id); err == nil {
			return item, nil
		}
	}

	item, err := s.jewelryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJewelryNotFound
		}
		return nil, err
	}
	if s.catalog != nil {
		s.catalog.SetJewelry(item)
	}
	return item, nil
}

func (s *jewelryService) GetAllJewelry() ([]models.Jewelry, error) {
	if s.catalog != nil {
		if items, err := s.catalog.GetCatalog(); err == nil {
			return items, nil
		}
	}

	items, err := s.jewelryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if s.catalog != nil {
		s.catalog.SetCatalog(items)
	}
	return items, nil
}

func (s *jewelryService) GetJewelryByType(jewelryType string) ([]models.Jewelry, error) {
	if !validJewelryType(jewelryType) {
		return nil, fmt.Errorf("%w: unknown jewelry type %q", ErrValidation, jewelryType)
	}
	return s.jewelryRepo.GetByType(jewelryType)
}

func (s *jewelryService) GetJewelryByCategory(category string) ([]models.Jewelry, error) {
	if !validJewelryCategory(category) {
		return nil, fmt.Errorf("%w: unknown jewelry category %q", ErrValidation, category)
	}
	return s.jewelryRepo.GetByCategory(category)
}

func (s *jewelryService) UpdateJewelry(id uint, input JewelryInput) (*models.Jewelry, error) {
	jewelry, err := s.jewelryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJewelryNotFound
		}
		return nil, err
	}
	if err := validateJewelryInput(input); err != nil {
		return nil, err
	}

	jewelry.Type = input.Type
	jewelry.Name = input.Name
	jewelry.Material = input.Material
	jewelry.Weight = input.Weight
	jewelry.Price = input.Price
	jewelry.StockQuantity = input.StockQuantity
	jewelry.Category = input.Category
	jewelry.Size = input.Size
	jewelry.Length = input.Length
	jewelry.ClaspType = input.ClaspType
	if err := s.jewelryRepo.Update(jewelry); err != nil {
		return nil, err
	}
	s.invalidateItem(id)
	return jewelry, nil
}

// DeleteJewelry refuses to remove an item any order line still references.
func (s *jewelryService) DeleteJewelry(id uint) error {
	if _, err := s.jewelryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJewelryNotFound
		}
		return err
	}

	references, err := s.orderItemRepo.GetByJewelryID(id)
	if err != nil {
		return err
	}
	if len(references) > 0 {
		return fmt.Errorf("%w: jewelry %d", ErrJewelryInUse, id)
	}

	if err := s.jewelryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateItem(id)
	return nil
}

func (s *jewelryService) invalidateItem(id uint) {
	if s.catalog == nil {
		return
	}
	s.catalog.InvalidateJewelry(id)
	s.catalog.InvalidateCatalog()
}

func (s *jewelryService) invalidateCatalog() {
	if s.catalog == nil {
		return
	}
	s.catalog.InvalidateCatalog()
}

// validateJewelryInput matches the variant exhaustively: each type requires
// exactly its own payload field.
func validateJewelryInput(input JewelryInput) error {
	if input.Name == "" || input.Material == "" {
		return fmt.Errorf("%w: name and material are required", ErrValidation)
	}
	if input.Price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrValidation)
	}
	if input.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", ErrValidation)
	}
	if !validJewelryCategory(input.Category) {
		return fmt.Errorf("%w: unknown jewelry category %q", ErrValidation, input.Category)
	}

	switch models.JewelryType(input.Type) {
	case models.JewelryRing:
		if input.Size == nil || *input.Size == "" {
			return fmt.Errorf("%w: size is required for rings", ErrValidation)
		}
	case models.JewelryNecklace:
		if input.Length == nil {
			return fmt.Errorf("%w: length is required for necklaces", ErrValidation)
		}
	case models.JewelryEarring:
		if input.ClaspType == nil || *input.ClaspType == "" {
			return fmt.Errorf("%w: clasp type is required for earrings", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown jewelry type %q", ErrValidation, input.Type)
	}
	return nil
}

func validJewelryType(jewelryType string) bool {
	switch models.JewelryType(jewelryType) {
	case models.JewelryRing, models.JewelryNecklace, models.JewelryEarring:
		return true
	}
	return false
}

func validJewelryCategory(category string) bool {
	switch models.JewelryCategory(category) {
	case models.CategoryLuxury, models.CategoryClassic, models.CategoryCasual:
		return true
	}
	return false
}
