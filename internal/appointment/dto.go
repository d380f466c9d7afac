package appointment

import (
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type CreateAppointmentDTO struct {
	ClientID      int64     `json:"client_id"`
	CatalogItemID *int64    `json:"catalog_item_id"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Notes         string    `json:"notes"`
}

func (d *CreateAppointmentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("client_id", d.ClientID).Required()
	v.Field("notes", d.Notes).MaxLength(2000)
	if err := v.Validate(); err != nil {
		return err
	}
	if err := validation.ValidateAppointmentWindow(d.StartsAt, d.EndsAt); err != nil {
		return err
	}
	return nil
}

type UpdateAppointmentDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Notes    *string    `json:"notes"`
}

func (d *UpdateAppointmentDTO) Validate() error {
	if (d.StartsAt == nil) != (d.EndsAt == nil) {
		return internal.NewValidationError("starts_at and ends_at must be rescheduled together", internal.ErrCodeInvalidDate)
	}
	if d.StartsAt != nil {
		if err := validation.ValidateAppointmentWindow(*d.StartsAt, *d.EndsAt); err != nil {
			return err
		}
	}
	if d.Notes != nil && len(*d.Notes) > 2000 {
		return internal.NewValidationFieldError("notes", "notes must not exceed 2000 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

type CancelAppointmentDTO struct {
	Reason string `json:"reason"`
}

type ListAppointmentsQuery struct {
	ClientID *int64
	Status   string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}
