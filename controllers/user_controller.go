package controllers

import (
	"net/http"

	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/models"
	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	uid := c.GetUint("userID")
	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}

func GetProfile(c *gin.Context) {
	profile, err := services.GetUserProfile(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(c.GetUint("userID"), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

// GetCalorieTarget returns the user's daily target. estimated=false means
// the profile was too incomplete and the 2000 kcal default applies.
func GetCalorieTarget(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	target, estimated := services.CalorieTarget(user)
	c.JSON(http.StatusOK, gin.H{"calorie_target": target, "estimated": estimated})
}

type PreferencesInput struct {
	Allergies []string `json:"allergies"`
	Cuisines  []string `json:"cuisines"`
	Dietary   []string `json:"dietary"`
}

func GetPreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var allergies []models.UserAllergy
	var cuisines []models.UserCuisine
	var dietary []models.UserDietaryPreference
	config.DB.Where("user_id = ?", uid).Find(&allergies)
	config.DB.Where("user_id = ?", uid).Find(&cuisines)
	config.DB.Where("user_id = ?", uid).Find(&dietary)

	out := PreferencesInput{Allergies: []string{}, Cuisines: []string{}, Dietary: []string{}}
	for _, a := range allergies {
		out.Allergies = append(out.Allergies, a.Name)
	}
	for _, cu := range cuisines {
		out.Cuisines = append(out.Cuisines, cu.Name)
	}
	for _, d := range dietary {
		out.Dietary = append(out.Dietary, d.Name)
	}
	c.JSON(http.StatusOK, out)
}

func UpdatePreferences(c *gin.Context) {
	uid := c.GetUint("userID")

	var input PreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ReplaceAllergies(uid, input.Allergies); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := services.ReplaceCuisines(uid, input.Cuisines); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := services.ReplaceDietaryPreferences(uid, input.Dietary); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
