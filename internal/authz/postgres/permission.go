package postgres

import (
	"context"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/authz"
	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
	permissionDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/permission"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GrantRepository persists grants in the two parallel permission tables,
// picking the table by account type so the engine and the administration
// service share one lookup path.
type GrantRepository struct {
	db *gorm.DB
}

func NewGrantRepository(db *gorm.DB) authz.GrantRepository {
	return &GrantRepository{db: db}
}

func (r *GrantRepository) FindGrant(ctx context.Context, accountType internal.AccountType, principalID, moduleID int64) (*authz.Grant, error) {
	switch accountType {
	case internal.AccountTypeProfessional:
		var row permissionDatamodel.ProfessionalPermission
		err := r.db.WithContext(ctx).
			Where("professional_id = ? AND module_id = ?", principalID, moduleID).
			First(&row).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, err
		}
		return &authz.Grant{PrincipalID: row.ProfessionalID, ModuleID: row.ModuleID, HasAccess: row.HasAccess}, nil

	case internal.AccountTypeEmployee:
		var row permissionDatamodel.EmployeePermission
		err := r.db.WithContext(ctx).
			Where("employee_id = ? AND module_id = ?", principalID, moduleID).
			First(&row).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, nil
			}
			return nil, err
		}
		return &authz.Grant{PrincipalID: row.EmployeeID, ModuleID: row.ModuleID, HasAccess: row.HasAccess}, nil
	}

	return nil, nil
}

// UpsertGrant creates or updates the single row for (principal, module).
// Concurrent writers are serialized by the ON CONFLICT clause; last write
// wins, which is acceptable since no multi-step invariant spans the upsert.
func (r *GrantRepository) UpsertGrant(ctx context.Context, accountType internal.AccountType, principalID, moduleID int64, hasAccess bool) (*authz.Grant, error) {
	switch accountType {
	case internal.AccountTypeProfessional:
		row := permissionDatamodel.ProfessionalPermission{
			ProfessionalID: principalID,
			ModuleID:       moduleID,
			HasAccess:      hasAccess,
		}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "professional_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"has_access", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return nil, err
		}
		return &authz.Grant{PrincipalID: principalID, ModuleID: moduleID, HasAccess: hasAccess}, nil

	case internal.AccountTypeEmployee:
		row := permissionDatamodel.EmployeePermission{
			EmployeeID: principalID,
			ModuleID:   moduleID,
			HasAccess:  hasAccess,
		}
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"has_access", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return nil, err
		}
		return &authz.Grant{PrincipalID: principalID, ModuleID: moduleID, HasAccess: hasAccess}, nil
	}

	return nil, gorm.ErrInvalidData
}

func (r *GrantRepository) FindGrantsForPrincipal(ctx context.Context, accountType internal.AccountType, principalID int64) ([]*authz.Grant, error) {
	var grants []*authz.Grant

	switch accountType {
	case internal.AccountTypeProfessional:
		var rows []permissionDatamodel.ProfessionalPermission
		if err := r.db.WithContext(ctx).Where("professional_id = ?", principalID).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			grants = append(grants, &authz.Grant{PrincipalID: row.ProfessionalID, ModuleID: row.ModuleID, HasAccess: row.HasAccess})
		}

	case internal.AccountTypeEmployee:
		var rows []permissionDatamodel.EmployeePermission
		if err := r.db.WithContext(ctx).Where("employee_id = ?", principalID).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, row := range rows {
			grants = append(grants, &authz.Grant{PrincipalID: row.EmployeeID, ModuleID: row.ModuleID, HasAccess: row.HasAccess})
		}
	}

	return grants, nil
}

// EmployeeDirectory resolves employee/company relationships for caller
// authorization on the administration surface.
type EmployeeDirectory struct {
	db *gorm.DB
}

func NewEmployeeDirectory(db *gorm.DB) authz.EmployeeDirectory {
	return &EmployeeDirectory{db: db}
}

func (d *EmployeeDirectory) GetEmployeeProfessionalID(ctx context.Context, employeeID int64) (int64, error) {
	var emp accountDatamodel.Employee
	err := d.db.WithContext(ctx).Select("id", "professional_id").Where("id = ?", employeeID).First(&emp).Error
	if err != nil {
		return 0, err
	}
	return emp.ProfessionalID, nil
}
