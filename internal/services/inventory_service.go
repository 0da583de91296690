package services

import (
	"errors"
	"fmt"
	"log"

	"jewelry_store/internal/cache"
	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"gorm.io/gorm"
)

// OrderLine is one (jewelry item, quantity) pair of an order request.
type OrderLine struct {
	JewelryID uint `json:"jewelry_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// InventoryService is the authoritative view of per-item stock. Reserve is
// two-phase: every line is validated under the item locks before any stock is
// decremented, so a failing line leaves all items untouched.
type InventoryService interface {
	Reserve(lines []OrderLine) error
	Release(lines []OrderLine) error
}

type inventoryService struct {
	jewelryRepo repository.JewelryRepository
	catalog     cache.CatalogCache
	itemLocks   *AggregateLocks
}

func NewInventoryService(jewelryRepo repository.JewelryRepository, catalog cache.CatalogCache) InventoryService {
	return &inventoryService{
		jewelryRepo: jewelryRepo,
		catalog:     catalog,
		itemLocks:   NewAggregateLocks(),
	}
}

func (s *inventoryService) Reserve(lines []OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	locked := s.itemLocks.LockAll(lineIDs(lines))
	defer s.itemLocks.UnlockAll(locked)

	// Phase one: validate every line before touching any stock.
	items := make([]*models.Jewelry, len(lines))
	for i, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for jewelry %d", ErrValidation, line.JewelryID)
		}
		item, err := s.jewelryRepo.GetByID(line.JewelryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrJewelryNotFound, line.JewelryID)
			}
			return err
		}
		if item.StockQuantity < line.Quantity {
			return fmt.Errorf("%w: jewelry %d has %d in stock, %d requested",
				ErrInsufficientStock, line.JewelryID, item.StockQuantity, line.Quantity)
		}
		items[i] = item
	}

	// Phase two: apply, rolling back already-applied lines on failure.
	for i, line := range lines {
		items[i].StockQuantity -= line.Quantity
		if err := s.jewelryRepo.Update(items[i]); err != nil {
			items[i].StockQuantity += line.Quantity
			s.rollback(lines[:i], items[:i])
			return fmt.Errorf("failed to persist reservation for jewelry %d: %w", line.JewelryID, err)
		}
		s.invalidate(line.JewelryID)
	}
	return nil
}

func (s *inventoryService) Release(lines []OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	locked := s.itemLocks.LockAll(lineIDs(lines))
	defer s.itemLocks.UnlockAll(locked)

	for _, line := range lines {
		item, err := s.jewelryRepo.GetByID(line.JewelryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id %d", ErrJewelryNotFound, line.JewelryID)
			}
			return err
		}
		item.StockQuantity += line.Quantity
		if err := s.jewelryRepo.Update(item); err != nil {
			return fmt.Errorf("failed to persist release for jewelry %d: %w", line.JewelryID, err)
		}
		s.invalidate(line.JewelryID)
	}
	return nil
}

func (s *inventoryService) rollback(lines []OrderLine, items []*models.Jewelry) {
	for i := range lines {
		items[i].StockQuantity += lines[i].Quantity
		if err := s.jewelryRepo.Update(items[i]); err != nil {
			log.Printf("Warning: Failed to roll back reservation for jewelry %d: %v", lines[i].JewelryID, err)
		}
		s.invalidate(lines[i].JewelryID)
	}
}

func (s *inventoryService) invalidate(jewelryID uint) {
	if s.catalog == nil {
		return
	}
	s.catalog.InvalidateJewelry(jewelryID)
	s.catalog.InvalidateCatalog()
}

func lineIDs(lines []OrderLine) []uint {
	ids := make([]uint, len(lines))
	for i, line := range lines {
		ids[i] = line.JewelryID
	}
	return ids
}
