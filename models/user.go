package models

// User represents a registered shopper
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	MobileNo string `gorm:"uniqueIndex;not null" json:"mobile_no"`
	Password string `gorm:"not null" json:"-"` // stored as plain text, compared via CheckPassword
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// CheckPassword reports whether the supplied password matches the stored one.
// Comparison is exact plain-text equality; keeping it behind this method means
// hashing can be introduced later without touching call sites.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}
