package services

import (
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService { return &ExpenseService{db: db} }

// LedgerEntryInput covers both expenses and purchases: a type label, an amount
// and free-text details.
type LedgerEntryInput struct {
	Type    string  `json:"type"`
	Amount  float64 `json:"amount"`
	Details string  `json:"details"`
}

func (in LedgerEntryInput) validate() error {
	v := validation.Violations{}
	validation.Required("type", in.Type, v)
	validation.PositiveFloat("amount", in.Amount, v)
	return v.Err()
}

func (s *ExpenseService) List() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("created_at DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Create inserts the expense and then a capital withdrawal of equal amount as a
// second, independent statement. The two are intentionally not wrapped in one
// transaction; a crash between them leaves the ledger short one withdrawal. The
// only link between the rows is the withdrawal's reason text.
func (s *ExpenseService) Create(in LedgerEntryInput) (*models.Expense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	expense := models.Expense{Type: in.Type, Amount: in.Amount, Details: in.Details}
	if err := s.db.Create(&expense).Error; err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}
	withdrawal := models.CapitalEntry{
		Amount: in.Amount,
		Reason: "expense: " + in.Details,
		Type:   models.CapitalWithdraw,
	}
	if err := s.db.Create(&withdrawal).Error; err != nil {
		return nil, fmt.Errorf("insert capital withdrawal for expense %d: %w", expense.ID, err)
	}
	return &expense, nil
}

// Delete removes only the expense row; the linked capital withdrawal stays.
func (s *ExpenseService) Delete(id uint) error {
	if err := s.db.Delete(&models.Expense{}, id).Error; err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	return nil
}
