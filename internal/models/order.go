package models

import "time"

// Order is a client order. The outstanding balance is never stored; use Remaining.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ClientID  uint      `gorm:"not null;index" json:"client_id"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	Details   string    `gorm:"not null" json:"details"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	Paid      float64   `gorm:"default:0" json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}

// Remaining is the unpaid part of the order.
func (o Order) Remaining() float64 { return o.Amount - o.Paid }
