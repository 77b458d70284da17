package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roamify/services/blog"
	"roamify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler exposes the blog endpoints.
type PostHandler struct {
	Service blog.PostService
}

// NewPostHandler creates a new PostHandler instance.
func NewPostHandler(svc blog.PostService) *PostHandler {
	return &PostHandler{Service: svc}
}

type postRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListPostsHandler handles GET /api/posts.
func (h *PostHandler) ListPostsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

// CreatePostHandler handles POST /api/posts.
func (h *PostHandler) CreatePostHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	post, err := h.Service.Create(req.Title, req.Content)
	if err != nil {
		logger.Error("Failed to save post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Post added!", "post": post})
}

// UpdatePostHandler handles PUT /api/posts/:id. The stored record is fully
// replaced by the supplied fields.
func (h *PostHandler) UpdatePostHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	post, err := h.Service.Update(id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, blog.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		logger.Error("Failed to update post", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post updated!", "post": post})
}

// DeletePostHandler handles DELETE /api/posts/:id. Deleting an unknown id
// still answers 200.
func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Service.Delete(id); err != nil {
		logger.Error("Failed to delete post", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully!"})
}
