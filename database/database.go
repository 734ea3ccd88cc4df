package database

import (
	"fmt"
	"log"

	config "github.com/cybruGhost/keattractions-sub001/configs"
	"github.com/cybruGhost/keattractions-sub001/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Attraction{},
		&models.Safari{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedAdmin creates the single admin account. That row doubles as the support
// inbox: customer messages are addressed to its id.
func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FirstName: config.Config("ADMIN_FIRST_NAME"),
		LastName:  config.Config("ADMIN_LAST_NAME"),
		Email:     adminEmail,
		Password:  string(hashedPassword),
		Role:      "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SupportInbox resolves the admin account every customer conversation is
// routed to. Keeping this a real row avoids a magic "admin" sentinel string
// colliding with user ids.
func SupportInbox() (*models.User, error) {
	var admin models.User
	if err := DB.Where("role = ?", "admin").Order("created_at asc").First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
