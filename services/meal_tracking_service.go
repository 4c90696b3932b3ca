package services

import (
	"fmt"
	"time"

	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/models"
)

type MealTrackingService struct{}

func NewMealTrackingService() *MealTrackingService {
	return &MealTrackingService{}
}

type MealLogInput struct {
	MealType string    `json:"meal_type" binding:"required"`
	Title    string    `json:"title" binding:"required"`
	ImageURL string    `json:"image_url"`
	Calories float64   `json:"calories"`
	CarbsG   float64   `json:"carbs_g"`
	ProteinG float64   `json:"protein_g"`
	FatG     float64   `json:"fat_g"`
	AteAt    time.Time `json:"ate_at"`
}

// MealLogFilter narrows List. Zero values mean "no filter".
type MealLogFilter struct {
	From     time.Time
	To       time.Time
	MealType string
	Page     int
	Limit    int
}

func validateMealInput(in MealLogInput) error {
	if !models.ValidMealType(in.MealType) {
		return fmt.Errorf("invalid meal_type %q", in.MealType)
	}
	// Calories are trusted as supplied; only macro grams must be non-negative.
	if in.CarbsG < 0 || in.ProteinG < 0 || in.FatG < 0 {
		return fmt.Errorf("macro grams must be non-negative")
	}
	return nil
}

func (s *MealTrackingService) Add(userID uint, in MealLogInput) (*models.MealLog, error) {
	if err := validateMealInput(in); err != nil {
		return nil, err
	}
	ateAt := in.AteAt
	if ateAt.IsZero() {
		ateAt = time.Now()
	}
	log := models.MealLog{
		UserID:   userID,
		MealType: in.MealType,
		Title:    in.Title,
		ImageURL: in.ImageURL,
		Calories: in.Calories,
		CarbsG:   in.CarbsG,
		ProteinG: in.ProteinG,
		FatG:     in.FatG,
		AteAt:    ateAt,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *MealTrackingService) Get(userID, id uint) (*models.MealLog, error) {
	var log models.MealLog
	err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&log).Error
	if err != nil {
		return nil, err // may be gorm.ErrRecordNotFound
	}
	return &log, nil
}

// List returns one page of the user's diary rows, newest first, plus the
// total row count for the filter.
func (s *MealTrackingService) List(userID uint, f MealLogFilter) ([]models.MealLog, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	q := config.DB.Model(&models.MealLog{}).Where("user_id = ?", userID)
	if !f.From.IsZero() {
		q = q.Where("ate_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("ate_at < ?", f.To)
	}
	if f.MealType != "" {
		q = q.Where("meal_type = ?", f.MealType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.MealLog
	err := q.
		Order("ate_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&logs).Error
	return logs, total, err
}

func (s *MealTrackingService) Update(userID, id uint, in MealLogInput) (*models.MealLog, error) {
	if err := validateMealInput(in); err != nil {
		return nil, err
	}
	var log models.MealLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&log).Error; err != nil {
		return nil, err
	}

	log.MealType = in.MealType
	log.Title = in.Title
	log.ImageURL = in.ImageURL
	log.Calories = in.Calories
	log.CarbsG = in.CarbsG
	log.ProteinG = in.ProteinG
	log.FatG = in.FatG
	if !in.AteAt.IsZero() {
		log.AteAt = in.AteAt
	}

	if err := config.DB.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *MealTrackingService) Delete(userID, id uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MealLog{}).Error
}

// DayTotals sums the persisted diary for one calendar day.
func (s *MealTrackingService) DayTotals(userID uint, day time.Time) (DiaryTotals, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var logs []models.MealLog
	if err := config.DB.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Find(&logs).Error; err != nil {
		return DiaryTotals{}, err
	}

	var t DiaryTotals
	for _, l := range logs {
		t.Calories += l.Calories
		t.CarbsG += l.CarbsG
		t.ProteinG += l.ProteinG
		t.FatG += l.FatG
	}
	return t, nil
}
