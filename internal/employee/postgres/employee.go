package postgres

import (
	"context"

	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, e *accountDatamodel.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *Repository) GetByID(ctx context.Context, professionalID, id int64) (*accountDatamodel.Employee, error) {
	var e accountDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("professional_id = ? AND id = ?", professionalID, id).
		First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*accountDatamodel.Employee, error) {
	var e accountDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) List(ctx context.Context, professionalID int64, limit, offset int) ([]*accountDatamodel.Employee, error) {
	var employees []*accountDatamodel.Employee
	err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("name").
		Limit(limit).
		Offset(offset).
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *Repository) Update(ctx context.Context, e *accountDatamodel.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}
