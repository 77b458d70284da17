package catalog

import (
	"path/filepath"
	"testing"

	"roamify/database/filestore"
	"roamify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *DefaultProductService {
	t.Helper()
	coll, err := filestore.Open[models.Product](filepath.Join(t.TempDir(), "products.json"))
	require.NoError(t, err)
	return &DefaultProductService{Products: coll}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Create(CreateProductInput{
		Name:        "Goa Getaway",
		Days:        5,
		Description: "Beaches and sunsets",
		Category:    "beach",
	})
	require.NoError(t, err)

	assert.Greater(t, product.ID, int64(0))
	assert.Equal(t, StatusActive, product.Status)
	assert.Equal(t, PlaceholderImage, product.Image)

	listed := svc.List()
	require.Len(t, listed, 1)
	assert.Equal(t, *product, listed[0])
}

func TestMergeUpdatePreservesUnsuppliedFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(CreateProductInput{
		Name:        "Goa Getaway",
		Days:        5,
		Description: "Beaches and sunsets",
		Category:    "beach",
		Destination: "Goa",
		Image:       "/uploads/image-1.png",
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, UpdateProductInput{Status: "inactive"})
	require.NoError(t, err)

	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Days, updated.Days)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Destination, updated.Destination)
	assert.Equal(t, created.Image, updated.Image)
}

func TestMergeUpdateReplacesSuppliedFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(CreateProductInput{
		Name:        "Goa Getaway",
		Days:        5,
		Description: "Beaches and sunsets",
		Category:    "beach",
	})
	require.NoError(t, err)

	days := 7
	updated, err := svc.Update(created.ID, UpdateProductInput{
		Name: "Goa Deluxe",
		Days: &days,
	})
	require.NoError(t, err)

	assert.Equal(t, "Goa Deluxe", updated.Name)
	assert.Equal(t, 7, updated.Days)
	assert.Equal(t, created.Description, updated.Description)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Update(12345, UpdateProductInput{Name: "nope"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteUnknownIDIsNoError(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(CreateProductInput{
		Name:        "Goa Getaway",
		Days:        5,
		Description: "Beaches and sunsets",
		Category:    "beach",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID+1))
	assert.Len(t, svc.List(), 1)

	require.NoError(t, svc.Delete(created.ID))
	assert.Empty(t, svc.List())
}
