package postgres

import (
	"context"

	formtemplateDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/formtemplate"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, t *formtemplateDatamodel.FormTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*formtemplateDatamodel.FormTemplate, error) {
	var t formtemplateDatamodel.FormTemplate
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repository) List(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*formtemplateDatamodel.FormTemplate, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var templates []*formtemplateDatamodel.FormTemplate
	err := q.Order("title").
		Limit(limit).
		Offset(offset).
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *Repository) Update(ctx context.Context, t *formtemplateDatamodel.FormTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}
