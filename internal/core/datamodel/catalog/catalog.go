package catalog

import "time"

// CatalogItem is a bookable service offering. Price is stored in cents to
// avoid floating point money.
type CatalogItem struct {
	ID              int64     `gorm:"primaryKey"`
	CompanyID       int64     `gorm:"column:company_id;not null;index"`
	Name            string    `gorm:"column:name;not null"`
	Description     string    `gorm:"column:description"`
	PriceCents      int64     `gorm:"column:price_cents;not null"`
	DurationMinutes int       `gorm:"column:duration_minutes;not null"`
	IsActive        bool      `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt       time.Time `gorm:"column:updated_at;default:now()"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}
