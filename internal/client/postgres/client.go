package postgres

import (
	"context"

	clientDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/client"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, c *clientDatamodel.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*clientDatamodel.Client, error) {
	var c clientDatamodel.Client
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) List(ctx context.Context, companyID int64, search string, limit, offset int) ([]*clientDatamodel.Client, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR phone LIKE ?", pattern, pattern, pattern)
	}

	var clients []*clientDatamodel.Client
	err := q.Order("name").
		Limit(limit).
		Offset(offset).
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *Repository) Update(ctx context.Context, c *clientDatamodel.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}
