package postgres

import (
	"context"

	paymentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/payment"
	"github.com/IgorMello0/auraia-hub/internal/payment"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *paymentDatamodel.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*paymentDatamodel.Payment, error) {
	var p paymentDatamodel.Payment
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, companyID int64, query payment.ListPaymentsQuery) ([]*paymentDatamodel.Payment, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if query.AppointmentID != nil {
		q = q.Where("appointment_id = ?", *query.AppointmentID)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	var payments []*paymentDatamodel.Payment
	err := q.Order("created_at DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *Repository) Update(ctx context.Context, p *paymentDatamodel.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}
