package services

import (
	"testing"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"
)

func TestOrderPaidCannotExceedAmount(t *testing.T) {
	gdb := setupTestDB(t)
	client, err := NewClientService(gdb).Create("Khaled")
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	svc := NewOrderService(gdb)
	_, err = svc.Create(client.ID, OrderInput{Quantity: 2, Details: "chairs", Amount: 100, Paid: 101})
	verr, ok := validation.AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Violations["paid"] != "exceeds_amount" {
		t.Fatalf("expected paid to exceed amount, got %v", verr.Violations)
	}
	var count int64
	gdb.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no write, got %d orders", count)
	}
}

func TestOrderCreateAndUpdate(t *testing.T) {
	gdb := setupTestDB(t)
	client, err := NewClientService(gdb).Create("Khaled")
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	svc := NewOrderService(gdb)
	order, err := svc.Create(client.ID, OrderInput{Quantity: 2, Details: "chairs", Amount: 100, Paid: 40})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Remaining() != 60 {
		t.Fatalf("expected remaining 60, got %v", order.Remaining())
	}

	updated, err := svc.Update(order.ID, OrderInput{Quantity: 2, Details: "chairs", Amount: 100, Paid: 100})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Remaining() != 0 {
		t.Fatalf("expected remaining 0, got %v", updated.Remaining())
	}

	// Overpaying on update is rejected and leaves the stored row alone.
	if _, err := svc.Update(order.ID, OrderInput{Quantity: 2, Details: "chairs", Amount: 100, Paid: 150}); err == nil {
		t.Fatalf("expected update rejection")
	}
	var stored models.Order
	if err := gdb.First(&stored, order.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.Paid != 100 {
		t.Fatalf("expected paid unchanged at 100, got %v", stored.Paid)
	}
}

func TestOrderValidationRejectsBadInput(t *testing.T) {
	gdb := setupTestDB(t)
	client, err := NewClientService(gdb).Create("Khaled")
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	svc := NewOrderService(gdb)
	_, err = svc.Create(client.ID, OrderInput{Quantity: 0, Details: "", Amount: 0, Paid: -1})
	verr, ok := validation.AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"quantity", "details", "amount", "paid"} {
		if _, found := verr.Violations[field]; !found {
			t.Fatalf("expected violation for %s, got %v", field, verr.Violations)
		}
	}
}
