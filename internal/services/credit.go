package services

import (
	"fmt"

	"factory-backend/internal/models"

	"gorm.io/gorm"
)

// CreditService derives outstanding balances from orders. Pure read.
type CreditService struct {
	db *gorm.DB
}

func NewCreditService(db *gorm.DB) *CreditService { return &CreditService{db: db} }

type OrderCredit struct {
	OrderID   uint    `json:"order_id"`
	Quantity  int     `json:"quantity"`
	Details   string  `json:"details"`
	Amount    float64 `json:"amount"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
	CreatedAt string  `json:"created_at"`
}

type ClientCredit struct {
	ClientID  uint          `json:"client_id"`
	Name      string        `json:"name"`
	Remaining float64       `json:"remaining"`
	Orders    []OrderCredit `json:"orders"`
}

type CreditReport struct {
	TotalRemaining float64        `json:"total_remaining"`
	Clients        []ClientCredit `json:"clients"`
}

// Report groups orders by client (clients without orders still appear), sums
// per-order remaining into a per-client total and those into a grand total.
// Ordering is client name, then order recency.
func (s *CreditService) Report() (*CreditReport, error) {
	var clients []models.Client
	err := s.db.Preload("Orders", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC")
	}).Order("name").Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("load credit data: %w", err)
	}
	report := &CreditReport{Clients: make([]ClientCredit, 0, len(clients))}
	for _, client := range clients {
		cc := ClientCredit{
			ClientID: client.ID,
			Name:     client.Name,
			Orders:   make([]OrderCredit, 0, len(client.Orders)),
		}
		for _, order := range client.Orders {
			remaining := order.Remaining()
			cc.Orders = append(cc.Orders, OrderCredit{
				OrderID:   order.ID,
				Quantity:  order.Quantity,
				Details:   order.Details,
				Amount:    order.Amount,
				Paid:      order.Paid,
				Remaining: remaining,
				CreatedAt: order.CreatedAt.Format("2006-01-02 15:04:05"),
			})
			cc.Remaining += remaining
		}
		report.TotalRemaining += cc.Remaining
		report.Clients = append(report.Clients, cc)
	}
	return report, nil
}
