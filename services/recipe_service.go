package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/logger"
	"github.com/aarusa/your-ai-meal-sub000/models"

	"go.uber.org/zap"
)

// GeneratedRecipe is one recipe parsed out of the model completion.
type GeneratedRecipe struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"` // Breakfast | Lunch | Snack | Dinner
	Description  string   `json:"description"`
	Calories     float64  `json:"calories"`
	CarbsG       float64  `json:"carbs_g"`
	ProteinG     float64  `json:"protein_g"`
	FatG         float64  `json:"fat_g"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`

	// AllergenWarnings lists ingredients matching the user's recorded
	// allergies. Populated here, never by the model.
	AllergenWarnings []string `json:"allergen_warnings,omitempty"`
}

type RecipeService struct {
	llm *LLMService
}

func NewRecipeService(llm *LLMService) *RecipeService {
	return &RecipeService{llm: llm}
}

const recipeSystemPrompt = "You are a nutritionist assistant. Respond with strict JSON only, no prose."

// GenerateRecipes asks the model for recipe suggestions built around the
// given pantry ingredients and the user's recorded preferences. When
// persist is true, results are stored as SavedMeals in status "generated".
func (s *RecipeService) GenerateRecipes(userID uint, ingredients []PantryItem, persist bool) ([]GeneratedRecipe, error) {
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("no ingredients selected")
	}

	prompt := s.buildPrompt(userID, ingredients)
	raw, err := s.llm.Chat(recipeSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var recipes []GeneratedRecipe
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("model returned no recipes")
	}

	allergies := s.userAllergies(userID)
	for i := range recipes {
		if !models.ValidMealType(recipes[i].Category) {
			recipes[i].Category = models.MealTypeDinner
		}
		recipes[i].AllergenWarnings = flagAllergens(recipes[i].Ingredients, allergies)
	}

	if persist {
		for _, r := range recipes {
			sm := models.SavedMeal{
				UserID:       userID,
				Name:         r.Name,
				Category:     r.Category,
				Description:  r.Description,
				Calories:     r.Calories,
				CarbsG:       r.CarbsG,
				ProteinG:     r.ProteinG,
				FatG:         r.FatG,
				Ingredients:  strings.Join(r.Ingredients, "\n"),
				Instructions: r.Instructions,
				Status:       models.MealStatusGenerated,
			}
			if err := config.DB.Create(&sm).Error; err != nil {
				logger.Error("failed to persist generated meal",
					zap.Uint("user_id", userID), zap.String("name", r.Name), zap.Error(err))
			}
		}
	}

	return recipes, nil
}

func (s *RecipeService) buildPrompt(userID uint, ingredients []PantryItem) string {
	var sb strings.Builder
	sb.WriteString("Available ingredients:\n")
	for _, it := range ingredients {
		fmt.Fprintf(&sb, "- %s x%d (%s, %.0f kcal each)\n", it.Name, it.Quantity, it.Category, it.Calories)
	}

	if allergies := s.userAllergies(userID); len(allergies) > 0 {
		fmt.Fprintf(&sb, "\nAvoid these allergens: %s\n", strings.Join(allergies, ", "))
	}
	if cuisines := userCuisines(userID); len(cuisines) > 0 {
		fmt.Fprintf(&sb, "Preferred cuisines: %s\n", strings.Join(cuisines, ", "))
	}
	if diets := userDietaryPreferences(userID); len(diets) > 0 {
		fmt.Fprintf(&sb, "Dietary preferences: %s\n", strings.Join(diets, ", "))
	}

	sb.WriteString(`
Suggest 3 recipes using mostly these ingredients. Respond with a JSON array;
each element: {"name", "category" (Breakfast|Lunch|Snack|Dinner), "description",
"calories", "carbs_g", "protein_g", "fat_g", "ingredients" (array of strings),
"instructions"}.`)
	return sb.String()
}

func (s *RecipeService) userAllergies(userID uint) []string {
	var rows []models.UserAllergy
	if err := config.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		logger.Warn("failed to load allergies", zap.Uint("user_id", userID), zap.Error(err))
		return nil
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func userCuisines(userID uint) []string {
	var rows []models.UserCuisine
	if err := config.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		logger.Warn("failed to load cuisines", zap.Uint("user_id", userID), zap.Error(err))
		return nil
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func userDietaryPreferences(userID uint) []string {
	var rows []models.UserDietaryPreference
	if err := config.DB.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		logger.Warn("failed to load dietary preferences", zap.Uint("user_id", userID), zap.Error(err))
		return nil
	}
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

// flagAllergens reports which recorded allergies appear, case-insensitively,
// in the ingredient list.
func flagAllergens(ingredients, allergies []string) []string {
	var hits []string
	for _, a := range allergies {
		al := strings.ToLower(a)
		for _, ing := range ingredients {
			if strings.Contains(strings.ToLower(ing), al) {
				hits = append(hits, a)
				break
			}
		}
	}
	return hits
}
