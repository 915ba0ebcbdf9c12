package models

import "time"

const (
	CapitalAdd      = "add"
	CapitalWithdraw = "withdraw"
)

// CapitalEntry is one movement in the capital ledger. The running balance is a
// derived sum over all entries, never a stored total.
type CapitalEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	Reason    string    `json:"reason"`
	Type      string    `gorm:"not null;check:chk_capital_type,type IN ('add','withdraw')" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the historical table name.
func (CapitalEntry) TableName() string { return "capital" }
