package config

import (
	"fmt"
	"os"

	"github.com/aarusa/your-ai-meal-sub000/logger"
	"github.com/aarusa/your-ai-meal-sub000/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// GetEnv returns the value of key, or fallback when unset/empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment", zap.Error(err))
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		GetEnv("DB_NAME", "aimeal"),
		GetEnv("DB_PORT", "5432"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.MealLog{},
		&models.SavedMeal{},
		&models.MealPlanCache{},
		&models.UserAllergy{},
		&models.UserCuisine{},
		&models.UserDietaryPreference{},
	)
	if err != nil {
		logger.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
