// Package export writes per-client order reports as spreadsheets.
package export

import (
	"fmt"
	"path/filepath"

	"factory-backend/internal/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const sheetName = "Client Orders"

var columns = []struct {
	header string
	width  float64
}{
	{"quantity", 15},
	{"details", 30},
	{"amount", 15},
	{"paid", 15},
	{"remaining", 15},
	{"created_at", 20},
}

// ClientReport writes the client's orders (newest first) to
// client_<id>_report.xlsx under dir and returns the file path. The remaining
// column is derived at export time, it is not read from the store.
func ClientReport(gdb *gorm.DB, dir string, clientID uint) (string, error) {
	var client models.Client
	if err := gdb.First(&client, clientID).Error; err != nil {
		return "", err
	}
	var orders []models.Order
	if err := gdb.Where("client_id = ?", clientID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return "", fmt.Errorf("load orders for client %d: %w", clientID, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, col.header); err != nil {
			return "", err
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return "", err
		}
	}
	for rowIdx, order := range orders {
		values := []any{
			order.Quantity,
			order.Details,
			order.Amount,
			order.Paid,
			order.Remaining(),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", err
			}
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("client_%d_report.xlsx", clientID))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return path, nil
}
