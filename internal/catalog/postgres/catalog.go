package postgres

import (
	"context"

	catalogDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/catalog"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, item *catalogDatamodel.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*catalogDatamodel.CatalogItem, error) {
	var item catalogDatamodel.CatalogItem
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *Repository) List(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*catalogDatamodel.CatalogItem, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var items []*catalogDatamodel.CatalogItem
	err := q.Order("name").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Update(ctx context.Context, item *catalogDatamodel.CatalogItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
