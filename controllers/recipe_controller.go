package controllers

import (
	"net/http"

	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	Recipes *services.RecipeService
	Pantry  *services.PantryStore
}

func NewRecipeController(recipes *services.RecipeService, pantry *services.PantryStore) *RecipeController {
	return &RecipeController{Recipes: recipes, Pantry: pantry}
}

// POST /api/ai/recipes
// {"product_ids": [1,2,3], "persist": true}
// An empty product_ids list uses the whole pantry.
func (rc *RecipeController) Generate(c *gin.Context) {
	var body struct {
		ProductIDs []uint `json:"product_ids"`
		Persist    bool   `json:"persist"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	pantry := rc.Pantry.Pantry(uid)

	var ingredients []services.PantryItem
	if len(body.ProductIDs) > 0 {
		ingredients = pantry.SelectSubset(body.ProductIDs)
	} else {
		ingredients = pantry.Items()
	}
	if len(ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pantry selection is empty"})
		return
	}

	recipes, err := rc.Recipes.GenerateRecipes(uid, ingredients, body.Persist)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
