package controllers

import (
	"net/http"

	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

type PantryController struct {
	Store *services.PantryStore
}

func NewPantryController(store *services.PantryStore) *PantryController {
	return &PantryController{Store: store}
}

// GET /pantry
func (pc *PantryController) List(c *gin.Context) {
	pantry := pc.Store.Pantry(c.GetUint("userID"))
	c.JSON(http.StatusOK, gin.H{"items": pantry.Items()})
}

// POST /pantry  {"product_id": 12, "quantity": 2}
func (pc *PantryController) Add(c *gin.Context) {
	var body struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	foodSvc := services.NewFoodService()
	product, err := foodSvc.Get(body.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	pantry := pc.Store.Pantry(c.GetUint("userID"))
	pantry.Add(*product, body.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": pantry.Items()})
}

// PUT /pantry/:productId  {"quantity": 5}
func (pc *PantryController) SetQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pantry := pc.Store.Pantry(c.GetUint("userID"))
	pantry.SetQuantity(id, body.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": pantry.Items()})
}

// DELETE /pantry/:productId
func (pc *PantryController) Remove(c *gin.Context) {
	id, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}
	pantry := pc.Store.Pantry(c.GetUint("userID"))
	pantry.Remove(id)
	c.Status(http.StatusNoContent)
}

// DELETE /pantry
func (pc *PantryController) Clear(c *gin.Context) {
	pc.Store.Pantry(c.GetUint("userID")).Clear()
	c.Status(http.StatusNoContent)
}
