package account

import "time"

// Professional is the tenant-owning account. Its ID doubles as the company
// (tenant) scope shared with its employees and all CRM records.
type Professional struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Phone        string    `gorm:"column:phone"`
	IsActive     bool      `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;default:now()"`
}

func (Professional) TableName() string {
	return "professionals"
}

// Employee belongs to a professional's company. Role is free-form except
// for "admin", which the authorization engine treats as a full bypass.
type Employee struct {
	ID             int64     `gorm:"primaryKey"`
	ProfessionalID int64     `gorm:"column:professional_id;not null;index"`
	Name           string    `gorm:"column:name;not null"`
	Email          string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash   string    `gorm:"column:password_hash;not null"`
	Role           string    `gorm:"column:role;not null;default:'atendente'"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()"`
}

func (Employee) TableName() string {
	return "employees"
}
