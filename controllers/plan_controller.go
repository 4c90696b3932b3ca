package controllers

import (
	"net/http"

	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans  *services.PlanService
	Pantry *services.PantryStore
}

func NewPlanController(plans *services.PlanService, pantry *services.PantryStore) *PlanController {
	return &PlanController{Plans: plans, Pantry: pantry}
}

// GET /api/plan/today is cached per calendar day and generated on first call.
func (pc *PlanController) Today(c *gin.Context) {
	uid := c.GetUint("userID")
	plan, err := pc.Plans.TodayPlan(uid, pc.Pantry.Pantry(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// POST /api/plan/regenerate drops today's snapshot and builds a new one.
func (pc *PlanController) Regenerate(c *gin.Context) {
	uid := c.GetUint("userID")
	plan, err := pc.Plans.Regenerate(uid, pc.Pantry.Pantry(uid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
