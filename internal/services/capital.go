package services

import (
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

type CapitalService struct {
	db *gorm.DB
}

func NewCapitalService(db *gorm.DB) *CapitalService { return &CapitalService{db: db} }

type CapitalInput struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
	Type   string  `json:"type"`
}

// Balance recomputes the running balance from scratch: sum of additions minus
// sum of withdrawals over the whole ledger.
func (s *CapitalService) Balance() (float64, error) {
	var added, withdrawn float64
	if err := s.db.Model(&models.CapitalEntry{}).
		Where("type = ?", models.CapitalAdd).
		Select("COALESCE(SUM(amount), 0)").Scan(&added).Error; err != nil {
		return 0, fmt.Errorf("sum capital additions: %w", err)
	}
	if err := s.db.Model(&models.CapitalEntry{}).
		Where("type = ?", models.CapitalWithdraw).
		Select("COALESCE(SUM(amount), 0)").Scan(&withdrawn).Error; err != nil {
		return 0, fmt.Errorf("sum capital withdrawals: %w", err)
	}
	return added - withdrawn, nil
}

// List returns the ledger history newest first.
func (s *CapitalService) List() ([]models.CapitalEntry, error) {
	var entries []models.CapitalEntry
	if err := s.db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list capital entries: %w", err)
	}
	return entries, nil
}

func (s *CapitalService) Create(in CapitalInput) (*models.CapitalEntry, error) {
	v := validation.Violations{}
	validation.PositiveFloat("amount", in.Amount, v)
	validation.OneOf("type", in.Type, []string{models.CapitalAdd, models.CapitalWithdraw}, v)
	if err := v.Err(); err != nil {
		return nil, err
	}
	entry := models.CapitalEntry{Amount: in.Amount, Reason: in.Reason, Type: in.Type}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("insert capital entry: %w", err)
	}
	return &entry, nil
}

func (s *CapitalService) Delete(id uint) error {
	if err := s.db.Delete(&models.CapitalEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete capital entry %d: %w", id, err)
	}
	return nil
}
