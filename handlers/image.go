package handlers

import (
	"net/http"

	"roamify/services/storage"

	"github.com/gin-gonic/gin"
)

// ImageHandler serves stored upload files by name.
type ImageHandler struct {
	Images storage.ImageStore
}

// NewImageHandler creates a new ImageHandler instance.
func NewImageHandler(images storage.ImageStore) *ImageHandler {
	return &ImageHandler{Images: images}
}

// GetImageHandler handles GET /api/images/:filename.
func (h *ImageHandler) GetImageHandler(c *gin.Context) {
	path, err := h.Images.Resolve(c.Param("filename"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.File(path)
}
