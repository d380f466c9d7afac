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

func (r *Repository) GetByID(ctx context.Context, id int64) (*accountDatamodel.Professional, error) {
	var p accountDatamodel.Professional
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(ctx context.Context, p *accountDatamodel.Professional) error {
	return r.db.WithContext(ctx).Save(p).Error
}
