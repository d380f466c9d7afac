package formtemplate

import "time"

// FormTemplate holds a professional-defined intake form. Fields is a JSON
// document owned by the frontend form builder; the backend stores it opaque.
type FormTemplate struct {
	ID        int64     `gorm:"primaryKey"`
	CompanyID int64     `gorm:"column:company_id;not null;index"`
	Title     string    `gorm:"column:title;not null"`
	Fields    string    `gorm:"column:fields;type:jsonb;default:'[]'"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:now()"`
}

func (FormTemplate) TableName() string {
	return "form_templates"
}
