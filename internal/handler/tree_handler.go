package handler

import (
	"net/http"

	"github.com/treeclass/gallery/backend/internal/model"
	"github.com/treeclass/gallery/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TreeHandler struct {
	gallery service.GalleryService
	admin   service.AdminService
}

func NewTreeHandler(gallery service.GalleryService, admin service.AdminService) *TreeHandler {
	return &TreeHandler{gallery: gallery, admin: admin}
}

// POST /trees
func (h *TreeHandler) Create(c *gin.Context) {
	var sub model.TreeSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tree, dup, err := h.gallery.Submit(sub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dup != nil {
		c.JSON(http.StatusCreated, dup)
		return
	}
	c.JSON(http.StatusCreated, tree)
}

// GET /trees
func (h *TreeHandler) GetAll(c *gin.Context) {
	list, err := h.gallery.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /trees/:id
func (h *TreeHandler) GetDetail(c *gin.Context) {
	id := c.Param("id")
	if !validTreeID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID format"})
		return
	}

	tree, err := h.gallery.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if tree == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		return
	}
	c.JSON(http.StatusOK, tree)
}

// DELETE /trees (admin)
func (h *TreeHandler) DeleteAll(c *gin.Context) {
	if err := h.admin.PurgeAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /trees/:id (admin)
func (h *TreeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validTreeID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tree ID format"})
		return
	}

	found, err := h.admin.PurgeTree(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tree not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// validTreeID accepts only the canonical 8-4-4-4-12 hex form; uuid.Parse
// alone would also take URN and braced variants.
func validTreeID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
