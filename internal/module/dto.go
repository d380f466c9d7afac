package module

import (
	"strings"

	"github.com/IgorMello0/auraia-hub/internal"
)

type CreateModuleDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (d *CreateModuleDTO) Validate() error {
	d.Code = strings.TrimSpace(strings.ToLower(d.Code))
	d.Name = strings.TrimSpace(d.Name)

	if d.Code == "" {
		return internal.NewValidationFieldError("code", "code is required", internal.ErrCodeValidationFailed)
	}
	for _, r := range d.Code {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return internal.NewValidationFieldError("code", "code must contain only lowercase letters, digits and underscores", internal.ErrCodeValidationFailed)
		}
	}
	if d.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	if len(d.Name) > 100 {
		return internal.NewValidationFieldError("name", "name must be at most 100 characters", internal.ErrCodeInvalidName)
	}
	return nil
}

type UpdateModuleDTO struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

func (d *UpdateModuleDTO) Validate() error {
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		if trimmed == "" {
			return internal.NewValidationFieldError("name", "name cannot be empty", internal.ErrCodeInvalidName)
		}
		if len(trimmed) > 100 {
			return internal.NewValidationFieldError("name", "name must be at most 100 characters", internal.ErrCodeInvalidName)
		}
		d.Name = &trimmed
	}
	return nil
}
