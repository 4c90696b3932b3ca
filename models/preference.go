package models

import "time"

// Join rows for the user's dietary preferences. These feed the recipe
// generation prompt and the allergen check on generated meals.

type UserAllergy struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"` // e.g. "peanut", "shellfish"
	CreatedAt time.Time
}

type UserCuisine struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"` // e.g. "italian", "thai"
	CreatedAt time.Time
}

type UserDietaryPreference struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"` // e.g. "vegetarian", "low-carb"
	CreatedAt time.Time
}
