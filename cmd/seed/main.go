// Command seed bootstraps an admin account and a few sample reviews.
// Safe to run repeatedly: existing rows are left alone.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spudhouse/internal/config"
	"spudhouse/internal/db"
	"spudhouse/internal/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.CartItem{},
		&model.Order{},
		&model.Review{},
		&model.PasswordReset{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()

	admin, err := ensureAdmin(ctx, gormDB)
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	if err := seedReviews(ctx, gormDB, admin); err != nil {
		log.Fatalf("seed reviews: %v", err)
	}

	log.Println("seed complete")
}

func ensureAdmin(ctx context.Context, gormDB *gorm.DB) (*model.User, error) {
	username := getEnv("ADMIN_USERNAME", "admin")
	email := getEnv("ADMIN_EMAIL", "admin@spudhouse.local")
	password := getEnv("ADMIN_PASSWORD", "ChangeMe123")

	var existing model.User
	err := gormDB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			if err := gormDB.WithContext(ctx).Model(&existing).Update("is_admin", true).Error; err != nil {
				return nil, err
			}
			log.Printf("promoted existing user %s to admin", email)
		} else {
			log.Printf("admin %s already exists", email)
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}

	admin := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}
	if err := gormDB.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, err
	}
	log.Printf("created admin %s", email)
	return admin, nil
}

func seedReviews(ctx context.Context, gormDB *gorm.DB, admin *model.User) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Review{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("reviews already present, skipping")
		return nil
	}

	samples := []model.Review{
		{UserID: admin.ID, Username: admin.Username, ProductName: "Loaded Fries", Rating: 5, Comment: "House favourite."},
		{UserID: admin.ID, Username: admin.Username, ProductName: "Classic Baked Potato", Rating: 4, Comment: "Comes out piping hot."},
		{UserID: admin.ID, Username: admin.Username, ProductName: "Potato Gnocchi", Rating: 5, Comment: "Made fresh daily."},
	}
	return gormDB.WithContext(ctx).Create(&samples).Error
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
