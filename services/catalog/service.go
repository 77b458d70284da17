package catalog

import (
	"errors"

	"roamify/database/filestore"
	"roamify/models"
)

// DefaultProductService implements ProductService over a file-backed
// collection.
type DefaultProductService struct {
	Products *filestore.Collection[models.Product]
}

// List returns every product in insertion order.
func (s *DefaultProductService) List() []models.Product {
	return s.Products.All()
}

// Create adds a product, filling in the default status and placeholder
// image where the caller supplied none.
func (s *DefaultProductService) Create(in CreateProductInput) (*models.Product, error) {
	status := in.Status
	if status == "" {
		status = StatusActive
	}
	image := in.Image
	if image == "" {
		image = PlaceholderImage
	}

	product := models.Product{
		ID:          s.Products.NextID(),
		Name:        in.Name,
		Days:        in.Days,
		Description: in.Description,
		Category:    in.Category,
		Destination: in.Destination,
		Status:      status,
		Image:       image,
	}
	if err := s.Products.Insert(product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies a merge update: only supplied fields overwrite the stored
// record, and the image changes only when a new upload produced one.
func (s *DefaultProductService) Update(id int64, in UpdateProductInput) (*models.Product, error) {
	product, ok := s.Products.Find(id)
	if !ok {
		return nil, ErrProductNotFound
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Days != nil {
		product.Days = *in.Days
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.Destination != "" {
		product.Destination = in.Destination
	}
	if in.Status != "" {
		product.Status = in.Status
	}
	if in.Image != "" {
		product.Image = in.Image
	}

	if err := s.Products.Replace(id, product); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// Delete removes a product. Deleting an unknown id is not an error.
func (s *DefaultProductService) Delete(id int64) error {
	return s.Products.Remove(id)
}
