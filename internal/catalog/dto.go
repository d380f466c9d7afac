package catalog

import (
	"strings"

	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type CreateCatalogItemDTO struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriceCents      int64  `json:"price_cents"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (d *CreateCatalogItemDTO) Validate() error {
	d.Name = strings.TrimSpace(d.Name)

	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(150)
	v.Field("description", d.Description).MaxLength(2000)
	if err := v.Validate(); err != nil {
		return err
	}
	if err := validation.ValidatePriceCents(d.PriceCents); err != nil {
		return err
	}
	if err := validation.ValidateDurationMinutes(int64(d.DurationMinutes)); err != nil {
		return err
	}
	return nil
}

type UpdateCatalogItemDTO struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	PriceCents      *int64  `json:"price_cents"`
	DurationMinutes *int    `json:"duration_minutes"`
	IsActive        *bool   `json:"is_active"`
}

func (d *UpdateCatalogItemDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		d.Name = &trimmed
		v.Field("name", trimmed).Required().MaxLength(150)
	}
	if d.Description != nil {
		v.Field("description", *d.Description).MaxLength(2000)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if d.PriceCents != nil {
		if err := validation.ValidatePriceCents(*d.PriceCents); err != nil {
			return err
		}
	}
	if d.DurationMinutes != nil {
		if err := validation.ValidateDurationMinutes(int64(*d.DurationMinutes)); err != nil {
			return err
		}
	}
	return nil
}
