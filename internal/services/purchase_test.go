package services

import (
	"testing"

	"factory-backend/internal/models"
)

func TestPurchaseCreateRecordsWithdrawal(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewPurchaseService(gdb)
	if _, err := svc.Create(LedgerEntryInput{Type: "raw material", Amount: 75.5, Details: "steel sheets"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	var purchaseCount int64
	gdb.Model(&models.Purchase{}).Count(&purchaseCount)
	if purchaseCount != 1 {
		t.Fatalf("expected 1 purchase, got %d", purchaseCount)
	}
	var withdrawal models.CapitalEntry
	if err := gdb.Where("type = ?", models.CapitalWithdraw).First(&withdrawal).Error; err != nil {
		t.Fatalf("load withdrawal: %v", err)
	}
	if withdrawal.Amount != 75.5 {
		t.Fatalf("expected withdrawal of 75.5, got %v", withdrawal.Amount)
	}
	if withdrawal.Reason != "purchase: steel sheets" {
		t.Fatalf("unexpected reason: %q", withdrawal.Reason)
	}
}

func TestPurchaseValidationRejectsMissingType(t *testing.T) {
	gdb := setupTestDB(t)
	svc := NewPurchaseService(gdb)
	if _, err := svc.Create(LedgerEntryInput{Type: " ", Amount: 20}); err == nil {
		t.Fatalf("expected validation error")
	}
	var count int64
	gdb.Model(&models.Purchase{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no write, got %d purchases", count)
	}
}
