package services

import (
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService { return &ProductService{db: db} }

type ProductStepInput struct {
	Details string  `json:"details"`
	Cost    float64 `json:"cost"`
}

type ProductInput struct {
	Name  string             `json:"name"`
	Steps []ProductStepInput `json:"steps"`
}

// List returns products by name with their steps.
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Steps").Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Create stores the product with total_cost fixed at creation time. Steps
// without details are not persisted, but their cost still enters the stored
// total. Later step changes never refresh total_cost.
func (s *ProductService) Create(in ProductInput) (*models.Product, error) {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	if err := v.Err(); err != nil {
		return nil, err
	}
	var total float64
	var steps []models.ProductStep
	for _, step := range in.Steps {
		total += step.Cost
		if step.Details == "" {
			continue
		}
		steps = append(steps, models.ProductStep{Details: step.Details, Cost: step.Cost})
	}
	product := models.Product{Name: in.Name, TotalCost: total, Steps: steps}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &product, nil
}

// Delete removes a product; its steps go via the FK cascade and any product
// sales keep their row with product_id set to NULL.
func (s *ProductService) Delete(id uint) error {
	if err := s.db.Delete(&models.Product{}, id).Error; err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}
