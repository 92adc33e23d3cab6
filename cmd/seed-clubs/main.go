package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/windcaddy/backend/internal/admin"
	"github.com/windcaddy/backend/internal/clubs"
	"github.com/windcaddy/backend/internal/config"
	"github.com/windcaddy/backend/internal/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Seed the standard 14-club bag
	repo := clubs.NewRepo(db)
	for _, club := range clubs.StandardSet() {
		if err := repo.Upsert(club); err != nil {
			log.Fatalf("Failed to seed club %q: %v", club.Name, err)
		}
		log.Printf("✓ Seeded %s (carry %.0f yd)", club.Name, club.CarryDistance)
	}

	// Seed admin account
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin" // Default username
		log.Printf("Using default admin username: %s", username)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "change-me-in-production" // Default password
		log.Printf("WARNING: Using default admin password. Set ADMIN_PASSWORD env var in production!")
	}

	displayName := "Admin"

	if err := admin.CreateAdminAccount(db, username, displayName, password); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("✓ Admin account created/updated successfully")
	log.Printf("  Username: %s", username)
	log.Printf("  Display Name: %s", displayName)
}
