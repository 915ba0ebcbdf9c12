package services

import (
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

type ProductSaleService struct {
	db *gorm.DB
}

func NewProductSaleService(db *gorm.DB) *ProductSaleService { return &ProductSaleService{db: db} }

type ProductSaleInput struct {
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	SaleType    string  `json:"sale_type"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
	Notes       string  `json:"notes"`
}

func (in ProductSaleInput) validate() error {
	v := validation.Violations{}
	if in.ProductID == 0 {
		v["product_id"] = "required"
	}
	validation.PositiveInt("quantity", in.Quantity, v)
	validation.OneOf("sale_type", in.SaleType, []string{models.SaleRetail, models.SaleWholesale}, v)
	validation.PositiveFloat("total_amount", in.TotalAmount, v)
	validation.NonNegativeFloat("paid_amount", in.PaidAmount, v)
	if _, bad := v["paid_amount"]; !bad {
		validation.AtMostFloat("paid_amount", "total_amount", in.PaidAmount, in.TotalAmount, v)
	}
	return v.Err()
}

// List returns sales newest first with the product attached (nil when the
// product was deleted since).
func (s *ProductSaleService) List() ([]models.ProductSale, error) {
	var sales []models.ProductSale
	if err := s.db.Preload("Product").Order("created_at DESC").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("list product sales: %w", err)
	}
	return sales, nil
}

// Create stores the sale with remaining_amount fixed at insert time.
func (s *ProductSaleService) Create(in ProductSaleInput) (*models.ProductSale, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	productID := in.ProductID
	sale := models.ProductSale{
		ProductID:       &productID,
		Quantity:        in.Quantity,
		SaleType:        in.SaleType,
		TotalAmount:     in.TotalAmount,
		PaidAmount:      in.PaidAmount,
		RemainingAmount: in.TotalAmount - in.PaidAmount,
		Notes:           in.Notes,
	}
	if err := s.db.Create(&sale).Error; err != nil {
		return nil, fmt.Errorf("insert product sale: %w", err)
	}
	return &sale, nil
}

func (s *ProductSaleService) Delete(id uint) error {
	if err := s.db.Delete(&models.ProductSale{}, id).Error; err != nil {
		return fmt.Errorf("delete product sale %d: %w", id, err)
	}
	return nil
}
