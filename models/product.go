package models

// Product represents an item in the store catalog
type Product struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"not null" json:"name"`
	Price   float64 `gorm:"not null" json:"price"` // expected >= 0, not enforced at the data layer
	OrderNo *string `json:"order_no"`
	Details string  `gorm:"not null" json:"details"`
	Image   *string `json:"image"` // path under /img or a presigned S3 URL
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
