package models

import (
	"time"

	"gorm.io/gorm"
)

// Meal types are a closed set.
const (
	MealTypeBreakfast = "Breakfast"
	MealTypeLunch     = "Lunch"
	MealTypeSnack     = "Snack"
	MealTypeDinner    = "Dinner"
)

// ValidMealType reports whether t is one of the four meal categories.
func ValidMealType(t string) bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSnack, MealTypeDinner:
		return true
	}
	return false
}

// MealLog is one persisted food-diary row. Calories are stored as supplied
// by the caller and are NOT reconciled against the macro breakdown.
type MealLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	MealType string `gorm:"size:20;not null"` // Breakfast | Lunch | Snack | Dinner
	Title    string `gorm:"not null"`
	ImageURL string

	Calories float64
	CarbsG   float64
	ProteinG float64
	FatG     float64

	AteAt time.Time `gorm:"index;not null"`
}
