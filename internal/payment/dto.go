package payment

import (
	"github.com/IgorMello0/auraia-hub/internal"
	paymentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/payment"
	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type CreatePaymentDTO struct {
	AppointmentID int64  `json:"appointment_id"`
	AmountCents   int64  `json:"amount_cents"`
	Method        string `json:"method"`
}

func (d *CreatePaymentDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("appointment_id", d.AppointmentID).Required()
	v.Field("method", d.Method).Required().OneOf([]string{
		paymentDatamodel.MethodCash,
		paymentDatamodel.MethodCard,
		paymentDatamodel.MethodPix,
		paymentDatamodel.MethodTransfer,
	}, internal.ErrCodeInvalidStatus)
	if err := v.Validate(); err != nil {
		return err
	}
	if d.AmountCents <= 0 {
		return internal.NewValidationFieldError("amount_cents", "amount_cents must be positive", internal.ErrCodeInvalidPrice)
	}
	return nil
}

type ListPaymentsQuery struct {
	AppointmentID *int64
	Status        string
	Limit         int
	Offset        int
}
