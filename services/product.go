package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopcraft/storefront/logger"
	"github.com/shopcraft/storefront/models"
	"github.com/shopcraft/storefront/uploads"
)

// ProductService is the catalog store.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// All returns every product, newest first.
func (s *ProductService) All() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Get fetches a single product by id.
func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product. An empty imagePath falls back to the shared
// placeholder.
func (s *ProductService) Create(name string, price float64, description, imagePath string) (*models.Product, error) {
	if imagePath == "" {
		imagePath = models.PlaceholderImage
	}
	product := models.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Image:       imagePath,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

// Delete removes the product row and its stored image file. The placeholder
// image is shared between products and is never removed; a missing file is
// treated as already absent. Cart lines referencing the product keep their
// snapshots.
func (s *ProductService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(product).Error; err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if err := uploads.Remove(product.Image); err != nil {
		// The row is gone; an orphaned file is not worth failing the request.
		logger.Warningf("failed to remove image %q for product %d: %v", product.Image, id, err)
	}
	return nil
}
