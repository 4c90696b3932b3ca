package controllers

import (
	"net/http"
	"strconv"

	"github.com/aarusa/your-ai-meal-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /food/search?q=apple&category=fruit&limit=20
func SearchFoods(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	foodSvc := services.NewFoodService()
	out, err := foodSvc.Search(c.Query("q"), c.Query("category"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /food/categories
func ListFoodCategories(c *gin.Context) {
	foodSvc := services.NewFoodService()
	cats, err := foodSvc.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// GET /food/:id
func GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	foodSvc := services.NewFoodService()
	p, err := foodSvc.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
