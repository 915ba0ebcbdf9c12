package models

import "time"

// Expense is a running cost. Creating one also records a capital withdrawal of
// equal amount, linked only by the withdrawal's reason text.
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null" json:"type"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// Purchase mirrors Expense for bought goods/materials, with the same implicit
// capital withdrawal on creation.
type Purchase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"not null" json:"type"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
