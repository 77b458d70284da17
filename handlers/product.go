package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roamify/services/catalog"
	"roamify/services/storage"
	"roamify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler exposes the tour-package catalog endpoints.
type ProductHandler struct {
	Service catalog.ProductService
	Images  storage.ImageStore
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(svc catalog.ProductService, images storage.ImageStore) *ProductHandler {
	return &ProductHandler{Service: svc, Images: images}
}

// ListProductsHandler handles GET /products.
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.List())
}

// CreateProductHandler handles POST /products. The body is multipart so an
// image file can ride along with the fields.
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()

	name := c.PostForm("name")
	days := c.PostForm("days")
	description := c.PostForm("description")
	category := c.PostForm("category")
	if name == "" || days == "" || description == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	image := ""
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.Images.Save(file)
		if err != nil {
			logger.Error("Failed to store product image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		image = url
	}

	daysN, _ := strconv.Atoi(days)
	product, err := h.Service.Create(catalog.CreateProductInput{
		Name:        name,
		Days:        daysN,
		Description: description,
		Category:    category,
		Destination: c.PostForm("destination"),
		Status:      c.PostForm("status"),
		Image:       image,
	})
	if err != nil {
		logger.Error("Failed to save product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added!", "product": product})
}

// UpdateProductHandler handles PUT /products/:id. Only supplied fields
// overwrite the stored record; the image changes only when a new file is
// uploaded.
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	in := catalog.UpdateProductInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Destination: c.PostForm("destination"),
		Status:      c.PostForm("status"),
	}
	if days := c.PostForm("days"); days != "" {
		n, _ := strconv.Atoi(days)
		in.Days = &n
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.Images.Save(file)
		if err != nil {
			logger.Error("Failed to store product image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		in.Image = url
	}

	product, err := h.Service.Update(id, in)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		logger.Error("Failed to update product", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated!", "product": product})
}

// DeleteProductHandler handles DELETE /products/:id. Deleting an unknown
// id still answers 200.
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := h.Service.Delete(id); err != nil {
		logger.Error("Failed to delete product", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}
