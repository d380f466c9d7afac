package authz

// SetPermissionDTO is the request body for toggling a grant.
type SetPermissionDTO struct {
	ModuleID  int64 `json:"module_id"`
	HasAccess bool  `json:"has_access"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d SetPermissionDTO) Validate() error {
	if d.ModuleID <= 0 {
		return ValidationError{Msg: "module_id is required"}
	}
	return nil
}

type PermissionsResponse struct {
	Permissions []EffectivePermission `json:"permissions"`
}
