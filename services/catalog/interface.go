package catalog

import "roamify/models"

// Fallback image used when a product is created without an upload.
const PlaceholderImage = "https://via.placeholder.com/150"

// StatusActive is the default product status.
const StatusActive = "active"

// CreateProductInput carries the fields accepted when adding a product.
type CreateProductInput struct {
	Name        string
	Days        int
	Description string
	Category    string
	Destination string
	Status      string
	Image       string
}

// UpdateProductInput carries the fields accepted when updating a product.
// Updates are merge updates: empty strings and a nil Days leave the stored
// value untouched.
type UpdateProductInput struct {
	Name        string
	Days        *int
	Description string
	Category    string
	Destination string
	Status      string
	Image       string
}

// ProductService defines operations over the tour-package catalog.
type ProductService interface {
	List() []models.Product
	Create(in CreateProductInput) (*models.Product, error)
	Update(id int64, in UpdateProductInput) (*models.Product, error)
	Delete(id int64) error
}
