package models

import "gorm.io/gorm"

// Lifecycle states of an AI-generated meal.
const (
	MealStatusGenerated = "generated"
	MealStatusAccepted  = "accepted"
	MealStatusRejected  = "rejected"
	MealStatusCooked    = "cooked"
)

// SavedMeal is an AI-generated recipe kept for the user, with its
// lifecycle status, optional rating and favorite flag.
type SavedMeal struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Category    string `gorm:"index"` // Breakfast | Lunch | Snack | Dinner
	Description string `gorm:"type:text"`

	Calories float64
	CarbsG   float64
	ProteinG float64
	FatG     float64

	Ingredients  string `gorm:"type:text"` // newline-separated
	Instructions string `gorm:"type:text"`

	Status   string `gorm:"size:20;default:generated;index"`
	Rating   int    // 0 = unrated, otherwise 1..5
	Favorite bool
}
