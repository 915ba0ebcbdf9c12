package services

import (
	"fmt"

	"factory-backend/internal/models"

	"gorm.io/gorm"
)

type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService { return &PurchaseService{db: db} }

func (s *PurchaseService) List() ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := s.db.Order("created_at DESC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

// Create mirrors ExpenseService.Create: record the purchase, then a capital
// withdrawal of equal amount as a separate statement (same non-atomic pair,
// same reason-text linkage).
func (s *PurchaseService) Create(in LedgerEntryInput) (*models.Purchase, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	purchase := models.Purchase{Type: in.Type, Amount: in.Amount, Details: in.Details}
	if err := s.db.Create(&purchase).Error; err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}
	withdrawal := models.CapitalEntry{
		Amount: in.Amount,
		Reason: "purchase: " + in.Details,
		Type:   models.CapitalWithdraw,
	}
	if err := s.db.Create(&withdrawal).Error; err != nil {
		return nil, fmt.Errorf("insert capital withdrawal for purchase %d: %w", purchase.ID, err)
	}
	return &purchase, nil
}

func (s *PurchaseService) Delete(id uint) error {
	if err := s.db.Delete(&models.Purchase{}, id).Error; err != nil {
		return fmt.Errorf("delete purchase %d: %w", id, err)
	}
	return nil
}
