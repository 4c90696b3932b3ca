package models

import "time"

// MealPlanCache is a day-keyed snapshot of the generated daily meal plan,
// kept so the plan is generated at most once per user per calendar day.
type MealPlanCache struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_plan_user_date;not null"`
	PlanDate  string `gorm:"uniqueIndex:idx_plan_user_date;size:10;not null"` // YYYY-MM-DD
	Payload   string `gorm:"type:text;not null"`                              // JSON plan snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}
