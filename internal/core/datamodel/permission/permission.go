package permission

import "time"

// The two grant tables are parallel on purpose: professionals and employees
// have different default policies, and their principal IDs live in
// different tables. Absence of a row is meaningful and distinct from an
// explicit has_access = false row.

type ProfessionalPermission struct {
	ID             int64     `gorm:"primaryKey"`
	ProfessionalID int64     `gorm:"column:professional_id;not null;uniqueIndex:ux_prof_module"`
	ModuleID       int64     `gorm:"column:module_id;not null;uniqueIndex:ux_prof_module"`
	HasAccess      bool      `gorm:"column:has_access;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt      time.Time `gorm:"column:updated_at;default:now()"`
}

func (ProfessionalPermission) TableName() string {
	return "professional_permissions"
}

type EmployeePermission struct {
	ID         int64     `gorm:"primaryKey"`
	EmployeeID int64     `gorm:"column:employee_id;not null;uniqueIndex:ux_emp_module"`
	ModuleID   int64     `gorm:"column:module_id;not null;uniqueIndex:ux_emp_module"`
	HasAccess  bool      `gorm:"column:has_access;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;default:now()"`
	UpdatedAt  time.Time `gorm:"column:updated_at;default:now()"`
}

func (EmployeePermission) TableName() string {
	return "employee_permissions"
}
