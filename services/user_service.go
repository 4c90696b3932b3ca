package services

import (
	"errors"
	"time"

	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/models"
	"github.com/aarusa/your-ai-meal-sub000/utils"
)

type ProfileInput struct {
	FullName      string  `json:"full_name"`
	Gender        string  `json:"gender"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Birthday      string  `json:"birthday"` // YYYY-MM-DD
	ActivityLevel string  `json:"activity_level"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error; err != nil {
		return nil, errors.New("user not found or disabled")
	}

	birthday := ""
	age := 0
	if !user.Birthday.IsZero() {
		birthday = user.Birthday.Format("2006-01-02")
		age, _ = utils.AgeFromBirthDate(user.Birthday, time.Now())
	}

	return map[string]interface{}{
		"id":             user.ID,
		"email":          user.Email,
		"full_name":      user.FullName,
		"gender":         user.Gender,
		"weight_kg":      user.WeightKg,
		"height_cm":      user.HeightCm,
		"birthday":       birthday,
		"age":            age,
		"activity_level": user.ActivityLevel,
	}, nil
}

// UpdateUserProfile applies the non-empty fields of input. Dates that do
// not parse are ignored, matching the degrade-silently policy of the
// estimator inputs.
func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.
		Where("id = ? AND disabled = ?", userID, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", input.Birthday); err == nil {
			user.Birthday = birthday
		}
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}

	return config.DB.Save(&user).Error
}

// CalorieTarget computes the user's daily target from their profile,
// substituting the system default when the profile is incomplete.
func CalorieTarget(user *models.User) (target int, estimated bool) {
	p := utils.EnergyProfile{
		Gender:        user.Gender,
		WeightKg:      user.WeightKg,
		HeightCm:      user.HeightCm,
		Birthday:      user.Birthday,
		ActivityLevel: user.ActivityLevel,
	}
	if tdee, ok := utils.TDEE(p, time.Now()); ok {
		return tdee, true
	}
	return utils.DefaultCalorieTarget, false
}

// The three Replace* helpers swap out the user's preference rows of one kind.

func ReplaceAllergies(userID uint, names []string) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.UserAllergy{}).Error; err != nil {
		return err
	}
	for _, n := range names {
		if err := config.DB.Create(&models.UserAllergy{UserID: userID, Name: n}).Error; err != nil {
			return err
		}
	}
	return nil
}

func ReplaceCuisines(userID uint, names []string) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.UserCuisine{}).Error; err != nil {
		return err
	}
	for _, n := range names {
		if err := config.DB.Create(&models.UserCuisine{UserID: userID, Name: n}).Error; err != nil {
			return err
		}
	}
	return nil
}

func ReplaceDietaryPreferences(userID uint, names []string) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.UserDietaryPreference{}).Error; err != nil {
		return err
	}
	for _, n := range names {
		if err := config.DB.Create(&models.UserDietaryPreference{UserID: userID, Name: n}).Error; err != nil {
			return err
		}
	}
	return nil
}
