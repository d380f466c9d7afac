package appointment

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID             int64      `gorm:"primaryKey"`
	CompanyID      int64      `gorm:"column:company_id;not null;index"`
	ProfessionalID int64      `gorm:"column:professional_id;not null;index"`
	ClientID       int64      `gorm:"column:client_id;not null;index"`
	CatalogItemID  *int64     `gorm:"column:catalog_item_id"`
	StartsAt       time.Time  `gorm:"column:starts_at;not null;index"`
	EndsAt         time.Time  `gorm:"column:ends_at;not null"`
	Status         string     `gorm:"column:status;default:'pending'"`
	Notes          string     `gorm:"column:notes"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at"`
	CreatedAt      time.Time  `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;default:now()"`
}

func (Appointment) TableName() string {
	return "appointments"
}
