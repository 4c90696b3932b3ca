package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	// Health profile. Zero values mean "not provided"; the energy
	// estimator degrades to the default calorie target in that case.
	Gender        string // free-text tolerant ("male" | "female" | "other" | anything)
	WeightKg      float64
	HeightCm      float64
	Birthday      time.Time
	ActivityLevel string // sedentary | light | moderate | active | very-active

	Disabled bool
}
