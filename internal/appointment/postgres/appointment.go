package postgres

import (
	"context"
	"time"

	"github.com/IgorMello0/auraia-hub/internal/appointment"
	appointmentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/appointment"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, appt *appointmentDatamodel.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

func (r *Repository) GetByID(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error) {
	var appt appointmentDatamodel.Appointment
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&appt).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

func (r *Repository) List(ctx context.Context, companyID int64, query appointment.ListAppointmentsQuery) ([]*appointmentDatamodel.Appointment, error) {
	q := r.db.WithContext(ctx).Where("company_id = ?", companyID)

	if query.ClientID != nil {
		q = q.Where("client_id = ?", *query.ClientID)
	}
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.From != nil {
		q = q.Where("starts_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("starts_at < ?", *query.To)
	}

	var appts []*appointmentDatamodel.Appointment
	err := q.Order("starts_at").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *Repository) Update(ctx context.Context, appt *appointmentDatamodel.Appointment) error {
	return r.db.WithContext(ctx).Save(appt).Error
}

// CountOverlapping counts live bookings intersecting [startsAt, endsAt).
// Cancelled appointments do not block the slot.
func (r *Repository) CountOverlapping(ctx context.Context, companyID int64, startsAt, endsAt time.Time, excludeID int64) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&appointmentDatamodel.Appointment{}).
		Where("company_id = ?", companyID).
		Where("status IN ?", []string{appointmentDatamodel.StatusPending, appointmentDatamodel.StatusConfirmed}).
		Where("starts_at < ? AND ends_at > ?", endsAt, startsAt)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
