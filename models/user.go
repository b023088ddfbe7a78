package models

import "time"

// User represents a self-registered contributor account.
type User struct {
	Phone      string    `gorm:"primaryKey;column:phone" json:"phone"`
	Name       string    `gorm:"column:name" json:"name"`
	NationalID string    `gorm:"column:nid" json:"nid"`
	Email      string    `gorm:"column:email" json:"email,omitempty"`
	Password   string    `gorm:"column:password" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// Referee represents a registered domain expert managed by the coordinator.
type Referee struct {
	Phone      string    `gorm:"primaryKey;column:phone" json:"phone"`
	FirstName  string    `gorm:"column:first_name" json:"first_name"`
	LastName   string    `gorm:"column:last_name" json:"last_name"`
	NationalID string    `gorm:"column:nid" json:"nid"`
	Field      string    `gorm:"column:field" json:"field"`
	Password   string    `gorm:"column:password" json:"-"`
	IsActive   bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

// FullName joins first and last name for display.
func (r *Referee) FullName() string {
	return r.FirstName + " " + r.LastName
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (Referee) TableName() string {
	return "referees"
}
