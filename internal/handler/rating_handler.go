package handler

import (
	"net/http"

	"github.com/treeclass/gallery/backend/internal/model"
	"github.com/treeclass/gallery/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	gallery service.GalleryService
}

func NewRatingHandler(gallery service.GalleryService) *RatingHandler {
	return &RatingHandler{gallery: gallery}
}

// POST /ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req model.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.gallery.Rate(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rating)
}
