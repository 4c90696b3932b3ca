package controllers

import (
	"fmt"
	"net/http"

	"github.com/aarusa/your-ai-meal-sub000/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /upload/image returns the public URL used as the image
// reference on meal logs and diary entries.
func UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	prefix := fmt.Sprintf("user-%d", c.GetUint("userID"))
	url, err := utils.UploadBase64Image(req.ImageBase64, prefix)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
