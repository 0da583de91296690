package migrations

import (
	"log"

	"jewelry_store/internal/config"
	"jewelry_store/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations migrates the schema and seeds the default admin account.
func RunMigrations(db *gorm.DB, cfg *config.Config) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Customer{},
		&models.Employee{},
		&models.Jewelry{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Account{},
	)
	if err != nil {
		return err
	}

	if err := seedAdminAccount(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed admin account: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedAdminAccount(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.Account{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         string(models.AccountAdmin),
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded default admin account %q", cfg.AdminUsername)
	return nil
}
