package db

import (
	"fmt"
	"log"

	"factory-backend/internal/models"

	"gorm.io/gorm"
)

type schemaTable struct {
	name  string
	model any
}

// baseTables is the original schema, ordered so referenced tables come first.
// The clients table doubles as the sentinel: its presence means the base schema
// was installed by an earlier run.
var baseTables = []schemaTable{
	{"clients", &models.Client{}},
	{"orders", &models.Order{}},
	{"capital", &models.CapitalEntry{}},
	{"expenses", &models.Expense{}},
	{"purchases", &models.Purchase{}},
	{"products", &models.Product{}},
	{"product_steps", &models.ProductStep{}},
	{"sales", &models.Sale{}},
}

// addedTables were introduced after the base schema shipped. On databases that
// already carry the base schema each one is probed and created individually.
var addedTables = []schemaTable{
	{"product_sales", &models.ProductSale{}},
}

// EnsureSchema makes the required tables exist. It is additive only: existing
// tables are never altered or dropped, so the check can detect missing tables
// but not changed columns.
func EnsureSchema(gdb *gorm.DB) error {
	m := gdb.Migrator()
	if !m.HasTable(&models.Client{}) {
		for _, t := range append(append([]schemaTable{}, baseTables...), addedTables...) {
			if m.HasTable(t.model) {
				continue
			}
			if err := m.CreateTable(t.model); err != nil {
				return fmt.Errorf("create table %s: %w", t.name, err)
			}
		}
		log.Println("[DB] schema created")
		return nil
	}
	for _, t := range addedTables {
		if m.HasTable(t.model) {
			continue
		}
		log.Printf("[DB] creating missing table %s", t.name)
		if err := m.CreateTable(t.model); err != nil {
			return fmt.Errorf("create table %s: %w", t.name, err)
		}
	}
	return nil
}
