package client

import "time"

type Client struct {
	ID        int64     `gorm:"primaryKey"`
	CompanyID int64     `gorm:"column:company_id;not null;index"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email"`
	Phone     string    `gorm:"column:phone"`
	Notes     string    `gorm:"column:notes"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (Client) TableName() string {
	return "clients"
}
