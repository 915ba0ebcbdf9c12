package services

import (
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService { return &OrderService{db: db} }

type OrderInput struct {
	Quantity int     `json:"quantity"`
	Details  string  `json:"details"`
	Amount   float64 `json:"amount"`
	Paid     float64 `json:"paid"`
}

func (in OrderInput) validate() error {
	v := validation.Violations{}
	validation.PositiveInt("quantity", in.Quantity, v)
	validation.Required("details", in.Details, v)
	validation.PositiveFloat("amount", in.Amount, v)
	validation.NonNegativeFloat("paid", in.Paid, v)
	if _, bad := v["paid"]; !bad {
		validation.AtMostFloat("paid", "amount", in.Paid, in.Amount, v)
	}
	return v.Err()
}

// ListForClient returns a client's orders newest first.
func (s *OrderService) ListForClient(clientID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Where("client_id = ?", clientID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders for client %d: %w", clientID, err)
	}
	return orders, nil
}

func (s *OrderService) Create(clientID uint, in OrderInput) (*models.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	order := models.Order{
		ClientID: clientID,
		Quantity: in.Quantity,
		Details:  in.Details,
		Amount:   in.Amount,
		Paid:     in.Paid,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return &order, nil
}

func (s *OrderService) Update(id uint, in OrderInput) (*models.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return nil, err
	}
	order.Quantity = in.Quantity
	order.Details = in.Details
	order.Amount = in.Amount
	order.Paid = in.Paid
	if err := s.db.Save(&order).Error; err != nil {
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}
	return &order, nil
}

func (s *OrderService) Delete(id uint) error {
	if err := s.db.Delete(&models.Order{}, id).Error; err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}
