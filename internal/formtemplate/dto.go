package formtemplate

import (
	"encoding/json"
	"strings"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type CreateTemplateDTO struct {
	Title  string          `json:"title"`
	Fields json.RawMessage `json:"fields"`
}

func (d *CreateTemplateDTO) Validate() error {
	d.Title = strings.TrimSpace(d.Title)

	v := validation.NewValidator()
	v.Field("title", d.Title).Required().MaxLength(200)
	if err := v.Validate(); err != nil {
		return err
	}
	if err := validateFields(d.Fields); err != nil {
		return err
	}
	return nil
}

type UpdateTemplateDTO struct {
	Title    *string         `json:"title"`
	Fields   json.RawMessage `json:"fields"`
	IsActive *bool           `json:"is_active"`
}

func (d *UpdateTemplateDTO) Validate() error {
	if d.Title != nil {
		trimmed := strings.TrimSpace(*d.Title)
		if trimmed == "" {
			return internal.NewValidationFieldError("title", "title cannot be empty", internal.ErrCodeValidationFailed)
		}
		if len(trimmed) > 200 {
			return internal.NewValidationFieldError("title", "title must not exceed 200 characters", internal.ErrCodeValidationFailed)
		}
		d.Title = &trimmed
	}
	if d.Fields != nil {
		if err := validateFields(d.Fields); err != nil {
			return err
		}
	}
	return nil
}

// validateFields only checks the document is a JSON array; the field schema
// is owned by the frontend form builder.
func validateFields(raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return internal.NewValidationFieldError("fields", "fields must be a JSON array", internal.ErrCodeValidationFailed)
	}
	if len(fields) > 100 {
		return internal.NewValidationFieldError("fields", "fields must not exceed 100 entries", internal.ErrCodeValidationFailed)
	}
	return nil
}
