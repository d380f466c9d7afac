package client

import (
	"strings"

	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type CreateClientDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

func (d *CreateClientDTO) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))

	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(150)
	v.Field("email", d.Email).MaxLength(254)
	v.Field("phone", d.Phone).MaxLength(30)
	v.Field("notes", d.Notes).MaxLength(2000)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

type UpdateClientDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Notes    *string `json:"notes"`
	IsActive *bool   `json:"is_active"`
}

func (d *UpdateClientDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		d.Name = &trimmed
		v.Field("name", trimmed).Required().MaxLength(150)
	}
	if d.Email != nil {
		lowered := strings.TrimSpace(strings.ToLower(*d.Email))
		d.Email = &lowered
		v.Field("email", lowered).MaxLength(254)
	}
	if d.Phone != nil {
		v.Field("phone", *d.Phone).MaxLength(30)
	}
	if d.Notes != nil {
		v.Field("notes", *d.Notes).MaxLength(2000)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
