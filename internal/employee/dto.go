package employee

import (
	"strings"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type CreateEmployeeDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (d *CreateEmployeeDTO) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(strings.ToLower(d.Email))
	d.Role = strings.TrimSpace(strings.ToLower(d.Role))
	if d.Role == "" {
		d.Role = "atendente"
	}

	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(150)
	v.Field("email", d.Email).Required().MaxLength(254)
	v.Field("password", d.Password).Required().MinLength(8).MaxLength(72)
	v.Field("role", d.Role).MaxLength(50)
	if err := v.Validate(); err != nil {
		return err
	}
	if !strings.Contains(d.Email, "@") {
		return internal.NewValidationFieldError("email", "email is invalid", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateEmployeeDTO struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (d *UpdateEmployeeDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		d.Name = &trimmed
		v.Field("name", trimmed).Required().MaxLength(150)
	}
	if d.Role != nil {
		lowered := strings.TrimSpace(strings.ToLower(*d.Role))
		d.Role = &lowered
		v.Field("role", lowered).Required().MaxLength(50)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// EmployeeResponse never exposes the password hash.
type EmployeeResponse struct {
	ID             int64  `json:"id"`
	ProfessionalID int64  `json:"professional_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	IsActive       bool   `json:"is_active"`
}
