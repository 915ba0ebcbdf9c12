package services

import (
	"fmt"

	"factory-backend/internal/models"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService { return &ClientService{db: db} }

// List returns all clients ordered by name.
func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Order("name").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// Get loads one client with its orders, newest order first.
func (s *ClientService) Get(id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.Preload("Orders", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC")
	}).First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Create(name string) (*models.Client, error) {
	v := validation.Violations{}
	validation.Required("name", name, v)
	if err := v.Err(); err != nil {
		return nil, err
	}
	client := models.Client{Name: name}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return &client, nil
}

// Delete removes a client; its orders go with it via the FK cascade, not
// application logic.
func (s *ClientService) Delete(id uint) error {
	if err := s.db.Delete(&models.Client{}, id).Error; err != nil {
		return fmt.Errorf("delete client %d: %w", id, err)
	}
	return nil
}
