package services

import (
	"testing"

	"factory-backend/internal/models"
)

func TestExpenseCreateRecordsWithdrawal(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewExpenseService(gdb)
	if _, err := svc.Create(LedgerEntryInput{Type: "electricity", Amount: 50, Details: "march bill"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	var expenseCount int64
	gdb.Model(&models.Expense{}).Count(&expenseCount)
	if expenseCount != 1 {
		t.Fatalf("expected 1 expense, got %d", expenseCount)
	}
	var withdrawals []models.CapitalEntry
	if err := gdb.Where("type = ?", models.CapitalWithdraw).Find(&withdrawals).Error; err != nil {
		t.Fatalf("load withdrawals: %v", err)
	}
	if len(withdrawals) != 1 {
		t.Fatalf("expected exactly 1 linked withdrawal, got %d", len(withdrawals))
	}
	if withdrawals[0].Amount != 50 {
		t.Fatalf("expected withdrawal of 50, got %v", withdrawals[0].Amount)
	}
	if withdrawals[0].Reason != "expense: march bill" {
		t.Fatalf("unexpected reason: %q", withdrawals[0].Reason)
	}
}

func TestExpenseValidationBlocksBothInserts(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewExpenseService(gdb)
	if _, err := svc.Create(LedgerEntryInput{Type: "", Amount: 0}); err == nil {
		t.Fatalf("expected validation error")
	}
	var expenseCount, capitalCount int64
	gdb.Model(&models.Expense{}).Count(&expenseCount)
	gdb.Model(&models.CapitalEntry{}).Count(&capitalCount)
	if expenseCount != 0 || capitalCount != 0 {
		t.Fatalf("expected no writes, got %d expenses and %d capital entries", expenseCount, capitalCount)
	}
}

func TestExpenseDeleteKeepsWithdrawal(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewExpenseService(gdb)
	expense, err := svc.Create(LedgerEntryInput{Type: "rent", Amount: 200, Details: "workshop"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(expense.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var expenseCount, capitalCount int64
	gdb.Model(&models.Expense{}).Count(&expenseCount)
	gdb.Model(&models.CapitalEntry{}).Count(&capitalCount)
	if expenseCount != 0 {
		t.Fatalf("expected expense gone, got %d", expenseCount)
	}
	// The ledger keeps the withdrawal; only the reason text ever linked them.
	if capitalCount != 1 {
		t.Fatalf("expected withdrawal to remain, got %d", capitalCount)
	}
}
