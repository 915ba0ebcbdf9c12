package services

import (
	"testing"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"
)

func TestProductSaleFixesRemaining(t *testing.T) {
	gdb := setupTestDB(t)
	product, err := NewProductService(gdb).Create(ProductInput{Name: "table"})
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	svc := NewProductSaleService(gdb)
	sale, err := svc.Create(ProductSaleInput{
		ProductID:   product.ID,
		Quantity:    4,
		SaleType:    models.SaleRetail,
		TotalAmount: 200,
		PaidAmount:  80,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sale.RemainingAmount != 120 {
		t.Fatalf("expected remaining 120, got %v", sale.RemainingAmount)
	}
}

func TestProductSalePaidCannotExceedTotal(t *testing.T) {
	gdb := setupTestDB(t)
	product, err := NewProductService(gdb).Create(ProductInput{Name: "table"})
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	svc := NewProductSaleService(gdb)
	_, err = svc.Create(ProductSaleInput{
		ProductID:   product.ID,
		Quantity:    1,
		SaleType:    models.SaleWholesale,
		TotalAmount: 100,
		PaidAmount:  150,
	})
	verr, ok := validation.AsError(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Violations["paid_amount"] != "exceeds_total_amount" {
		t.Fatalf("expected paid_amount to exceed total, got %v", verr.Violations)
	}
	var count int64
	gdb.Model(&models.ProductSale{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no write, got %d sales", count)
	}
}

func TestProductSaleSurvivesProductDelete(t *testing.T) {
	gdb := setupTestDB(t)
	productSvc := NewProductService(gdb)
	product, err := productSvc.Create(ProductInput{Name: "bench"})
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	svc := NewProductSaleService(gdb)
	if _, err := svc.Create(ProductSaleInput{
		ProductID:   product.ID,
		Quantity:    1,
		SaleType:    models.SaleRetail,
		TotalAmount: 50,
		PaidAmount:  50,
	}); err != nil {
		t.Fatalf("sale: %v", err)
	}
	if err := productSvc.Delete(product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	sales, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sales) != 1 {
		t.Fatalf("expected sale kept, got %d", len(sales))
	}
	if sales[0].ProductID != nil {
		t.Fatalf("expected product reference cleared, got %v", *sales[0].ProductID)
	}
}
