package postgres

import (
	"context"

	moduleDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/module"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetByCode looks up a module by its stable code. Missing modules come back
// as nil so callers can distinguish "not configured" from storage failure.
func (r *Repository) GetByCode(ctx context.Context, code string) (*moduleDatamodel.Module, error) {
	var m moduleDatamodel.Module
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*moduleDatamodel.Module, error) {
	var m moduleDatamodel.Module
	err := r.db.WithContext(ctx).First(&m, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetAllActive(ctx context.Context) ([]*moduleDatamodel.Module, error) {
	var modules []*moduleDatamodel.Module
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("code").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]*moduleDatamodel.Module, error) {
	var modules []*moduleDatamodel.Module
	if err := r.db.WithContext(ctx).Order("code").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *Repository) Create(ctx context.Context, m *moduleDatamodel.Module) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *Repository) Update(ctx context.Context, m *moduleDatamodel.Module) error {
	return r.db.WithContext(ctx).Save(m).Error
}
