package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcraft/storefront/models"
)

func TestProductCreateDefaultsToPlaceholder(t *testing.T) {
	products := NewProductService(testDB(t))

	product, err := products.Create("Pen", 2.5, "a fine pen", "")
	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderImage, product.Image)

	withImage, err := products.Create("Notebook", 4.0, "", "uploads/products/n.png")
	require.NoError(t, err)
	assert.Equal(t, "uploads/products/n.png", withImage.Image)
}

func TestProductGetAndAll(t *testing.T) {
	products := NewProductService(testDB(t))

	created, err := products.Create("Pen", 2.5, "", "")
	require.NoError(t, err)

	got, err := products.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Name)

	_, err = products.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = products.Create("Notebook", 4.0, "", "")
	require.NoError(t, err)

	all, err := products.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProductDeleteRemovesImageFile(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	imageDisk := filepath.Join(uploadDir, "products", "img.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(imageDisk), 0o755))
	require.NoError(t, os.WriteFile(imageDisk, []byte("png"), 0o644))

	products := NewProductService(testDB(t))
	created, err := products.Create("Pen", 2.5, "", "uploads/products/img.png")
	require.NoError(t, err)

	require.NoError(t, products.Delete(created.ID))

	_, err = products.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoFileExists(t, imageDisk)
}

func TestProductDeleteKeepsPlaceholder(t *testing.T) {
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	placeholderDisk := filepath.Join(uploadDir, "placeholder.png")
	require.NoError(t, os.WriteFile(placeholderDisk, []byte("png"), 0o644))

	products := NewProductService(testDB(t))
	created, err := products.Create("Pen", 2.5, "", "")
	require.NoError(t, err)

	require.NoError(t, products.Delete(created.ID))
	assert.FileExists(t, placeholderDisk)
}

func TestProductDeleteMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	products := NewProductService(testDB(t))
	created, err := products.Create("Pen", 2.5, "", "uploads/products/gone.png")
	require.NoError(t, err)

	assert.NoError(t, products.Delete(created.ID))
}

func TestProductDeleteNotFound(t *testing.T) {
	products := NewProductService(testDB(t))
	assert.ErrorIs(t, products.Delete(999), ErrNotFound)
}
