package cache

import (
	"errors"
	"time"

	"jewelry_store/internal/models"
)

var ErrCacheMiss = errors.New("cache miss")

// CatalogCache holds short-lived copies of jewelry catalog reads.
type CatalogCache interface {
	GetJewelry(id uint) (*models.Jewelry, error)
	SetJewelry(item *models.Jewelry) error
	InvalidateJewelry(id uint) error
	GetCatalog() ([]models.Jewelry, error)
	SetCatalog(items []models.Jewelry) error
	InvalidateCatalog() error
}

// SessionData is the payload stored per logged-in staff session.
type SessionData struct {
	AccountID uint      `json:"account_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionStore interface {
	SetSession(token string, data *SessionData, ttl time.Duration) error
	GetSession(token string) (*SessionData, error)
	DeleteSession(token string) error
}
