package models

import "time"

// OrderHistory is an append-only record of a placed order. Product name and
// price are snapshots taken at order time, so later catalog edits do not
// rewrite history.
type OrderHistory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id"` // nullable, no FK cascade
	ProductName string    `gorm:"not null" json:"product_name"`
	Price       float64   `gorm:"not null" json:"price"`
	OrderDate   time.Time `gorm:"not null" json:"order_date"`
}

// TableName specifies the table name for the OrderHistory model
func (OrderHistory) TableName() string {
	return "order_history"
}

// OrderStatus holds a free-text status for a product order. Multiple rows may
// exist per product; the newest one (highest id) is the current status.
type OrderStatus struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	Status    string `gorm:"not null" json:"status"`
}

// TableName specifies the table name for the OrderStatus model
func (OrderStatus) TableName() string {
	return "order_status"
}
