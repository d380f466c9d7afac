package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidName      ErrorCode = "INVALID_NAME"
	ErrCodeInvalidPrice     ErrorCode = "INVALID_PRICE"
	ErrCodeInvalidDuration  ErrorCode = "INVALID_DURATION"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"

	// Authentication failures. Unauthenticated means no credential was
	// presented at all; InvalidCredential means one was presented and
	// rejected. Both map to 401 but are logged separately for audit.
	ErrCodeUnauthenticated   ErrorCode = "UNAUTHENTICATED"
	ErrCodeInvalidCredential ErrorCode = "INVALID_CREDENTIAL"
	ErrCodeTokenExpired      ErrorCode = "TOKEN_EXPIRED"
	ErrCodeAccountInactive   ErrorCode = "ACCOUNT_INACTIVE"

	// Authorization outcomes from the module decision engine.
	ErrCodeModuleAccessDenied  ErrorCode = "MODULE_ACCESS_DENIED"
	ErrCodeModuleNotConfigured ErrorCode = "MODULE_NOT_CONFIGURED"
	ErrCodeInvalidAccountType  ErrorCode = "INVALID_ACCOUNT_TYPE"
	ErrCodeForbidden           ErrorCode = "FORBIDDEN"

	ErrCodeModuleNotFound       ErrorCode = "MODULE_NOT_FOUND"
	ErrCodeAppointmentNotFound  ErrorCode = "APPOINTMENT_NOT_FOUND"
	ErrCodeClientNotFound       ErrorCode = "CLIENT_NOT_FOUND"
	ErrCodeCatalogItemNotFound  ErrorCode = "CATALOG_ITEM_NOT_FOUND"
	ErrCodePaymentNotFound      ErrorCode = "PAYMENT_NOT_FOUND"
	ErrCodeConversationNotFound ErrorCode = "CONVERSATION_NOT_FOUND"
	ErrCodeTemplateNotFound     ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeEmployeeNotFound     ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeProfessionalNotFound ErrorCode = "PROFESSIONAL_NOT_FOUND"

	ErrCodeCannotModifyAppointment ErrorCode = "CANNOT_MODIFY_APPOINTMENT"
	ErrCodeCannotModifyPayment     ErrorCode = "CANNOT_MODIFY_PAYMENT"
	ErrCodeDuplicateModuleCode     ErrorCode = "DUPLICATE_MODULE_CODE"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok && len(validationErrors.Errors) > 0 {
			return validationErrors.Errors[0].Message
		}
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			if len(validationErrors.Errors) == 1 {
				return validationErrors.Errors[0].Message
			} else if len(validationErrors.Errors) > 1 {
				messages := make([]string, len(validationErrors.Errors))
				for i, err := range validationErrors.Errors {
					messages[i] = err.Message
				}
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewValidationFieldError(field, message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
		Details: ValidationErrors{
			Errors: []ValidationError{
				{Field: field, Message: message, Code: string(code)},
			},
		},
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

var (
	ErrUnauthenticated   = NewUnauthorizedError("Authentication required", ErrCodeUnauthenticated)
	ErrInvalidCredential = NewUnauthorizedError("Invalid or expired credential", ErrCodeInvalidCredential)
	ErrAccountInactive   = NewForbiddenError("Account is inactive", ErrCodeAccountInactive)

	ErrModuleAccessDenied = NewForbiddenError("Access to this module is denied", ErrCodeModuleAccessDenied)
	ErrInvalidAccountType = NewForbiddenError("Account type cannot access modules", ErrCodeInvalidAccountType)
	// ModuleNotConfigured is an operator error (route references a module
	// code missing from the registry), not a client error.
	ErrModuleNotConfigured = NewInternalError("Module is not configured", nil)

	ErrModuleNotFound       = NewNotFoundError("Module not found", ErrCodeModuleNotFound)
	ErrAppointmentNotFound  = NewNotFoundError("Appointment not found", ErrCodeAppointmentNotFound)
	ErrClientNotFound       = NewNotFoundError("Client not found", ErrCodeClientNotFound)
	ErrCatalogItemNotFound  = NewNotFoundError("Catalog item not found", ErrCodeCatalogItemNotFound)
	ErrPaymentNotFound      = NewNotFoundError("Payment not found", ErrCodePaymentNotFound)
	ErrConversationNotFound = NewNotFoundError("Conversation not found", ErrCodeConversationNotFound)
	ErrTemplateNotFound     = NewNotFoundError("Form template not found", ErrCodeTemplateNotFound)
	ErrEmployeeNotFound     = NewNotFoundError("Employee not found", ErrCodeEmployeeNotFound)
	ErrProfessionalNotFound = NewNotFoundError("Professional not found", ErrCodeProfessionalNotFound)

	ErrForbidden               = NewForbiddenError("Insufficient rights for this operation", ErrCodeForbidden)
	ErrCannotModifyAppointment = NewValidationError("Appointment cannot be modified in its current status", ErrCodeCannotModifyAppointment)
	ErrCannotModifyPayment     = NewValidationError("Payment cannot be modified in its current status", ErrCodeCannotModifyPayment)
	ErrDuplicateModuleCode     = NewConflictError("Module code already exists", ErrCodeDuplicateModuleCode)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Success bool      `json:"success"`
	Error   *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Success: false, Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
