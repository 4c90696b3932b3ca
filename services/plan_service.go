package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/logger"
	"github.com/aarusa/your-ai-meal-sub000/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DailyPlan is the generated set of meals for one calendar day.
type DailyPlan struct {
	Date  string            `json:"date"` // YYYY-MM-DD
	Meals []GeneratedRecipe `json:"meals"`
	// Fallback marks a default plan substituted after a generation failure.
	Fallback bool `json:"fallback,omitempty"`
}

// PlanService produces at most one generated plan per user per calendar
// day, caching the snapshot in meal_plan_caches. A per-user monotonically
// increasing token guards against a slow generation overwriting the state
// of a newer request.
type PlanService struct {
	recipes *RecipeService
	hub     *RealtimeHub

	mu     sync.Mutex
	tokens map[uint]uint64
}

func NewPlanService(recipes *RecipeService, hub *RealtimeHub) *PlanService {
	return &PlanService{recipes: recipes, hub: hub, tokens: make(map[uint]uint64)}
}

// PlanDateKey is the cache key for a moment in time.
func PlanDateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// nextToken invalidates all in-flight generations for the user and
// returns the token for the new one.
func (s *PlanService) nextToken(userID uint) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID]++
	return s.tokens[userID]
}

func (s *PlanService) tokenCurrent(userID uint, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[userID] == token
}

// TodayPlan returns the cached plan for today when present, otherwise
// generates one from the user's pantry, caches it and returns it. A
// generation failure substitutes a default plan so callers never block.
func (s *PlanService) TodayPlan(userID uint, pantry *Pantry) (*DailyPlan, error) {
	key := PlanDateKey(time.Now())

	var cached models.MealPlanCache
	err := config.DB.
		Where("user_id = ? AND plan_date = ?", userID, key).
		First(&cached).Error
	if err == nil {
		var plan DailyPlan
		if jsonErr := json.Unmarshal([]byte(cached.Payload), &plan); jsonErr == nil {
			return &plan, nil
		}
		// corrupt snapshot: fall through and regenerate
		logger.Warn("discarding unreadable plan snapshot", zap.Uint("user_id", userID), zap.String("date", key))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to read plan cache: %w", err)
	}

	token := s.nextToken(userID)
	plan := s.generate(userID, key, pantry)

	// A newer request superseded this one while the model was thinking;
	// drop the stale result without touching the cache.
	if !s.tokenCurrent(userID, token) {
		logger.Info("dropping superseded plan generation", zap.Uint("user_id", userID))
		return plan, nil
	}

	if !plan.Fallback {
		s.store(userID, key, plan)
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{"kind": "plan.ready", "date": key})
	}
	return plan, nil
}

// Regenerate discards today's cached plan and produces a fresh one.
func (s *PlanService) Regenerate(userID uint, pantry *Pantry) (*DailyPlan, error) {
	key := PlanDateKey(time.Now())
	if err := config.DB.
		Where("user_id = ? AND plan_date = ?", userID, key).
		Delete(&models.MealPlanCache{}).Error; err != nil {
		return nil, fmt.Errorf("failed to invalidate plan cache: %w", err)
	}
	return s.TodayPlan(userID, pantry)
}

func (s *PlanService) generate(userID uint, key string, pantry *Pantry) *DailyPlan {
	recipes, err := s.recipes.GenerateRecipes(userID, pantry.Items(), false)
	if err != nil {
		logger.Error("plan generation failed, substituting default plan",
			zap.Uint("user_id", userID), zap.Error(err))
		return defaultPlan(key)
	}
	return &DailyPlan{Date: key, Meals: recipes}
}

func (s *PlanService) store(userID uint, key string, plan *DailyPlan) {
	payload, err := json.Marshal(plan)
	if err != nil {
		logger.Error("failed to encode plan snapshot", zap.Error(err))
		return
	}
	row := models.MealPlanCache{UserID: userID, PlanDate: key, Payload: string(payload)}
	if err := config.DB.
		Where("user_id = ? AND plan_date = ?", userID, key).
		Assign(models.MealPlanCache{Payload: string(payload)}).
		FirstOrCreate(&row).Error; err != nil {
		logger.Error("failed to store plan snapshot", zap.Uint("user_id", userID), zap.Error(err))
	}
}

// defaultPlan is the hardcoded fallback served when generation fails.
func defaultPlan(key string) *DailyPlan {
	return &DailyPlan{
		Date:     key,
		Fallback: true,
		Meals: []GeneratedRecipe{
			{Name: "Oatmeal with banana", Category: models.MealTypeBreakfast, Calories: 350, CarbsG: 60, ProteinG: 10, FatG: 7},
			{Name: "Chicken salad", Category: models.MealTypeLunch, Calories: 520, CarbsG: 25, ProteinG: 40, FatG: 28},
			{Name: "Greek yogurt", Category: models.MealTypeSnack, Calories: 150, CarbsG: 12, ProteinG: 15, FatG: 4},
			{Name: "Salmon with rice and vegetables", Category: models.MealTypeDinner, Calories: 650, CarbsG: 55, ProteinG: 42, FatG: 26},
		},
	}
}
