package services

import (
	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/models"
)

// FoodService serves the product catalog users browse when building
// their pantry and diary.
type FoodService struct{}

func NewFoodService() *FoodService {
	return &FoodService{}
}

func (s *FoodService) Get(id uint) (*models.Product, error) {
	var p models.Product
	if err := config.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Search matches product names case-insensitively; an empty query lists
// the catalog (capped).
func (s *FoodService) Search(query, category string, limit int) ([]models.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	q := config.DB.Model(&models.Product{})
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var products []models.Product
	err := q.Order("name").Limit(limit).Find(&products).Error
	return products, err
}

func (s *FoodService) Categories() ([]string, error) {
	var cats []string
	err := config.DB.
		Model(&models.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &cats).Error
	return cats, err
}
