package models

// Product is a manufactured item. TotalCost is the sum of step costs captured at
// creation time only; later step changes do not refresh it.
type Product struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	TotalCost float64       `gorm:"not null;default:0" json:"total_cost"`
	Steps     []ProductStep `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

// ProductStep is one manufacturing step of a product.
type ProductStep struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Details   string  `gorm:"not null" json:"details"`
	Cost      float64 `gorm:"not null;default:0" json:"cost"`
}
