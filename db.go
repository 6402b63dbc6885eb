package main

import (
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Kasasatrevor256/ProFootball-Manager/models"
	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/reports"
	"github.com/Kasasatrevor256/ProFootball-Manager/pkg/storage"
)

var db *gorm.DB

var reportEngine *reports.Engine

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect postgres database:", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.RefreshToken{}); err != nil {
			log.Printf("migration warning (refresh_tokens): %v", err)
		}
		if err := db.AutoMigrate(&models.Player{}); err != nil {
			log.Printf("migration warning (players): %v", err)
		}
		if err := db.AutoMigrate(&models.Payment{}); err != nil {
			log.Printf("migration warning (payments): %v", err)
		}
		if err := db.AutoMigrate(&models.Expense{}); err != nil {
			log.Printf("migration warning (expenses): %v", err)
		}
		if err := db.AutoMigrate(&models.MatchDay{}); err != nil {
			log.Printf("migration warning (match_days): %v", err)
		}
	}
	seedDB()

	reportEngine = reports.New(storage.New(db))
}

func seedDB() {
	// Seed an admin account so the admin-only registration flow is bootstrappable.
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count == 0 {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		admin := models.User{
			Name:           "Administrator",
			Email:          email,
			HashedPassword: hashedPassword,
			Role:           models.RoleAdmin,
			Status:         models.StatusActive,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("failed to seed admin user: %v", err)
			return
		}
		log.Printf("Seeded admin user: email=%s", email)
	}
}
