package models

// StorePolicy is a single store rule shown to shoppers
type StorePolicy struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Rule string `gorm:"uniqueIndex;not null" json:"rule"`
}

// TableName specifies the table name for the StorePolicy model
func (StorePolicy) TableName() string {
	return "store_policies"
}
