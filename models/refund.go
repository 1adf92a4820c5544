package models

import "time"

// Refund is an append-only record of a processed refund
type Refund struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	ReturnMoney float64   `gorm:"not null" json:"return_money"`
	AccountNo   string    `gorm:"not null" json:"account_no"`
	Cancelled   bool      `gorm:"not null" json:"cancelled"`
	OrderDate   time.Time `gorm:"not null" json:"order_date"`
	CancelDate  time.Time `gorm:"not null" json:"cancel_date"`
}

// TableName specifies the table name for the Refund model
func (Refund) TableName() string {
	return "refunds"
}
