package models

import "time"

const (
	SaleRetail    = "retail"
	SaleWholesale = "wholesale"
)

// Sale is the legacy sales table. It is still created on fresh databases so old
// data stays readable, but no service writes to it; ProductSale replaced it.
type Sale struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"index" json:"client_id"`
	Client    Client    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProductID uint      `gorm:"index" json:"product_id"`
	Product   Product   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductSale records a sale of a product. Unlike Order, the remaining amount is
// stored, fixed at insert time.
type ProductSale struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProductID       *uint     `gorm:"index" json:"product_id"`
	Product         *Product  `gorm:"constraint:OnDelete:SET NULL" json:"product,omitempty"`
	Quantity        int       `gorm:"not null;default:1" json:"quantity"`
	SaleType        string    `gorm:"not null;check:chk_product_sales_type,sale_type IN ('retail','wholesale')" json:"sale_type"`
	TotalAmount     float64   `gorm:"not null;default:0" json:"total_amount"`
	PaidAmount      float64   `gorm:"not null;default:0" json:"paid_amount"`
	RemainingAmount float64   `gorm:"not null;default:0" json:"remaining_amount"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}
