package database

import (
	"log"
	"time"

	"marseille-immobilier/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn, adminUsername, adminPassword string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	createDefaultAdmin(adminUsername, adminPassword)
	seedTranslations()
	seedCarouselSettings()
}

// Migrate runs schema migration for all models. Split out from Init so
// tests can run it against their own connection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Agency{},
		&models.AgencyImage{},
		&models.ContactMessage{},
		&models.Translation{},
		&models.CarouselSettings{},
		&models.CarouselItem{},
	)
}

// first boot: create the admin account if no user exists yet
func createDefaultAdmin(username, password string) {
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "ChangeMe123!"
	}

	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash default admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s", username)
}

func seedCarouselSettings() {
	var count int64
	if err := DB.Model(&models.CarouselSettings{}).Count(&count).Error; err != nil {
		log.Printf("failed to check carousel settings: %v", err)
		return
	}
	if count > 0 {
		return
	}

	settings := models.CarouselSettings{IsActive: true, IntervalSeconds: 5}
	if err := DB.Create(&settings).Error; err != nil {
		log.Printf("failed to create carousel settings: %v", err)
	}
}
