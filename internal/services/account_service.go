package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"jewelry_store/internal/cache"
	"jewelry_store/internal/models"
	"jewelry_store/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService interface {
	CreateAccount(username, password, role string) (*models.Account, error)
	Login(username, password string) (string, *cache.SessionData, error)
	Logout(token string) error
	ValidateSession(token string) (*cache.SessionData, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
	sessions    cache.SessionStore
	sessionTTL  time.Duration
}

func NewAccountService(accountRepo repository.AccountRepository, sessions cache.SessionStore, sessionTTL time.Duration) AccountService {
	return &accountService{accountRepo: accountRepo, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *accountService) CreateAccount(username, password, role string) (*models.Account, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	switch models.AccountRole(role) {
	case models.AccountAdmin, models.AccountStaff:
	default:
		return nil, fmt.Errorf("%w: unknown account role %q", ErrValidation, role)
	}

	_, err := s.accountRepo.GetByUsername(username)
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) Login(username, password string) (string, *cache.SessionData, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !account.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}
	session := &cache.SessionData{
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", nil, err
	}
	return token, session, nil
}

func (s *accountService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}

func (s *accountService) ValidateSession(token string) (*cache.SessionData, error) {
	session, err := s.sessions.GetSession(token)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return session, nil
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
