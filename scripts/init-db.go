package main

import (
	"fmt"
	"log"

	"jewelry_store/internal/config"
	"jewelry_store/internal/database"
	"jewelry_store/internal/migrations"
	"jewelry_store/internal/models"
)

// Drops every table and rebuilds the schema from scratch, then seeds the
// admin account and a small demo catalog. Meant for development databases.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Customer{},
		&models.Employee{},
		&models.Jewelry{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Account{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Creating tables...")
	if err := migrations.RunMigrations(db, cfg); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding demo catalog...")
	size := "8"
	length := 45.0
	clasp := "lobster"
	demo := []models.Jewelry{
		{
			Type:          string(models.JewelryRing),
			Name:          "Gold Solitaire Ring",
			Material:      "18k gold",
			Weight:        4.2,
			Price:         850,
			StockQuantity: 6,
			Category:      string(models.CategoryLuxury),
			Size:          &size,
		},
		{
			Type:          string(models.JewelryNecklace),
			Name:          "Silver Chain Necklace",
			Material:      "sterling silver",
			Weight:        12.5,
			Price:         220,
			StockQuantity: 14,
			Category:      string(models.CategoryClassic),
			Length:        &length,
		},
		{
			Type:          string(models.JewelryEarring),
			Name:          "Pearl Drop Earrings",
			Material:      "sterling silver",
			Weight:        3.1,
			Price:         140,
			StockQuantity: 20,
			Category:      string(models.CategoryCasual),
			ClaspType:     &clasp,
		},
	}
	for i := range demo {
		if err := db.Create(&demo[i]).Error; err != nil {
			log.Printf("Warning: Failed to seed %s: %v", demo[i].Name, err)
		}
	}

	fmt.Println("Database initialization completed successfully!")
	fmt.Printf("Admin username: %s\n", cfg.AdminUsername)
}
