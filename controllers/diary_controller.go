package controllers

import (
	"net/http"
	"strconv"

	"github.com/aarusa/your-ai-meal-sub000/models"
	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

type DiaryController struct {
	Store *services.DiaryStore
	Hub   *services.RealtimeHub
}

func NewDiaryController(store *services.DiaryStore, hub *services.RealtimeHub) *DiaryController {
	return &DiaryController{Store: store, Hub: hub}
}

func (dc *DiaryController) notify(userID uint) {
	if dc.Hub != nil {
		dc.Hub.Broadcast(userID, map[string]any{"kind": "diary.updated"})
	}
}

func parseIndexParam(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return 0, false
	}
	return idx, true
}

// GET /diary
func (dc *DiaryController) List(c *gin.Context) {
	log := dc.Store.Log(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{"entries": log.Entries()})
}

// POST /diary
func (dc *DiaryController) Add(c *gin.Context) {
	var body struct {
		MealType string  `json:"meal_type" binding:"required"`
		Title    string  `json:"title" binding:"required"`
		ImageURL string  `json:"image_url"`
		Calories float64 `json:"calories"`
		CarbsG   float64 `json:"carbs_g"`
		ProteinG float64 `json:"protein_g"`
		FatG     float64 `json:"fat_g"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMealType(body.MealType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
		return
	}
	if body.CarbsG < 0 || body.ProteinG < 0 || body.FatG < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "macro grams must be non-negative"})
		return
	}

	uid := c.GetUint("userID")
	entry := dc.Store.Log(uid).AddEntry(services.DiaryEntry{
		MealType: body.MealType,
		Title:    body.Title,
		ImageURL: body.ImageURL,
		Calories: body.Calories,
		CarbsG:   body.CarbsG,
		ProteinG: body.ProteinG,
		FatG:     body.FatG,
	})
	dc.notify(uid)
	c.JSON(http.StatusCreated, entry)
}

// DELETE /diary/:index
func (dc *DiaryController) Remove(c *gin.Context) {
	idx, ok := parseIndexParam(c)
	if !ok {
		return
	}
	uid := c.GetUint("userID")
	if !dc.Store.Log(uid).RemoveEntry(idx) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no entry at index"})
		return
	}
	dc.notify(uid)
	c.Status(http.StatusNoContent)
}

// PUT /diary/:index/checked  {"checked": true}
func (dc *DiaryController) SetChecked(c *gin.Context) {
	idx, ok := parseIndexParam(c)
	if !ok {
		return
	}
	var body struct {
		Checked bool `json:"checked"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := c.GetUint("userID")
	if !dc.Store.Log(uid).SetChecked(idx, body.Checked) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no entry at index"})
		return
	}
	dc.notify(uid)
	c.Status(http.StatusNoContent)
}

// GET /diary/summary: totals over checked entries, macro split, and
// remaining calories against the user's target (negative when over).
func (dc *DiaryController) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	log := dc.Store.Log(user.ID)
	totals := log.ComputeTotals()
	target, estimated := services.CalorieTarget(user)

	c.JSON(http.StatusOK, gin.H{
		"totals":             totals,
		"macro_percentages":  services.ComputeMacroPercentages(totals),
		"calorie_target":     target,
		"target_estimated":   estimated,
		"remaining_calories": services.RemainingCalories(target, totals),
	})
}
