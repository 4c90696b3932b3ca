package services

import (
	"database/sql"
	"fmt"

	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/models"
)

type SavedMealService struct{}

func NewSavedMealService() *SavedMealService {
	return &SavedMealService{}
}

// ValidStatusTransition encodes the saved-meal lifecycle: a generated meal
// is accepted or rejected; only accepted meals can be marked cooked.
// rejected and cooked are terminal.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case models.MealStatusGenerated:
		return to == models.MealStatusAccepted || to == models.MealStatusRejected
	case models.MealStatusAccepted:
		return to == models.MealStatusCooked
	}
	return false
}

func (s *SavedMealService) Get(userID, id uint) (*models.SavedMeal, error) {
	var meal models.SavedMeal
	err := config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *SavedMealService) List(userID uint, status string) ([]models.SavedMeal, error) {
	q := config.DB.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var meals []models.SavedMeal
	err := q.Order("created_at DESC").Find(&meals).Error
	return meals, err
}

func (s *SavedMealService) Delete(userID, id uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedMeal{}).Error
}

func (s *SavedMealService) SetStatus(userID, id uint, status string) (*models.SavedMeal, error) {
	meal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	if !ValidStatusTransition(meal.Status, status) {
		return nil, fmt.Errorf("cannot move meal from %q to %q", meal.Status, status)
	}
	meal.Status = status
	if err := config.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *SavedMealService) SetRating(userID, id uint, rating int) (*models.SavedMeal, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}
	meal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	meal.Rating = rating
	if err := config.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *SavedMealService) SetFavorite(userID, id uint, favorite bool) (*models.SavedMeal, error) {
	meal, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	meal.Favorite = favorite
	if err := config.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *SavedMealService) Search(userID uint, query string) ([]models.SavedMeal, error) {
	var meals []models.SavedMeal
	err := config.DB.
		Where("user_id = ? AND name ILIKE ?", userID, "%"+query+"%").
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *SavedMealService) Recent(userID uint, limit int) ([]models.SavedMeal, error) {
	if limit <= 0 {
		limit = 5
	}
	var meals []models.SavedMeal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// Categories lists the distinct meal categories the user has saved meals in.
func (s *SavedMealService) Categories(userID uint) ([]string, error) {
	var cats []string
	err := config.DB.
		Model(&models.SavedMeal{}).
		Where("user_id = ?", userID).
		Distinct("category").
		Order("category").
		Pluck("category", &cats).Error
	return cats, err
}

type SavedMealStats struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	Favorites int64            `json:"favorites"`
	AvgRating float64          `json:"avg_rating"` // over rated meals only
}

func (s *SavedMealService) Stats(userID uint) (*SavedMealStats, error) {
	stats := &SavedMealStats{ByStatus: make(map[string]int64)}

	if err := config.DB.
		Model(&models.SavedMeal{}).
		Where("user_id = ?", userID).
		Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var rows []statusCount
	if err := config.DB.
		Model(&models.SavedMeal{}).
		Select("status, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.ByStatus[r.Status] = r.N
	}

	if err := config.DB.
		Model(&models.SavedMeal{}).
		Where("user_id = ? AND favorite = ?", userID, true).
		Count(&stats.Favorites).Error; err != nil {
		return nil, err
	}

	var avg sql.NullFloat64
	row := config.DB.
		Model(&models.SavedMeal{}).
		Select("AVG(rating)").
		Where("user_id = ? AND rating > 0", userID).
		Row()
	if err := row.Scan(&avg); err == nil && avg.Valid {
		stats.AvgRating = avg.Float64
	}

	return stats, nil
}
