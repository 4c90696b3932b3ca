package models

import "gorm.io/gorm"

// A food catalog entry users browse and add to their pantry.
type Product struct {
	gorm.Model
	Name        string `gorm:"not null;index"`
	Category    string `gorm:"index"`
	Calories    float64
	Protein     float64
	Carbs       float64
	Fat         float64
	Description string `gorm:"type:text"`
	ImageURL    string
}
