package models

// Client owns its orders; deleting a client removes them at the constraint level.
type Client struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Name   string  `gorm:"not null" json:"name"`
	Orders []Order `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}
