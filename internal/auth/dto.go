package auth

import "github.com/IgorMello0/auraia-hub/internal"

// LoginDTO is the transport shape used by the HTTP handler to accept login
// requests. AccountType defaults to professional when omitted so the
// original single-login SPA keeps working.
type LoginDTO struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"account_type,omitempty"`
}

// RefreshTokenDTO for refresh token requests
type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.Password == "" {
		return ValidationError{Msg: "password is required"}
	}
	if d.AccountType != "" {
		t := internal.AccountType(d.AccountType)
		if t != internal.AccountTypeProfessional && t != internal.AccountTypeEmployee {
			return ValidationError{Msg: "account_type must be professional or employee"}
		}
	}
	return nil
}

// Validate for refresh token DTO
func (d RefreshTokenDTO) Validate() error {
	if d.RefreshToken == "" {
		return ValidationError{Msg: "refresh_token is required"}
	}
	return nil
}
