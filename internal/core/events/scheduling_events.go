package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAppointmentConfirmed = "appointment.confirmed"
	EventTypeAppointmentCancelled = "appointment.cancelled"
	EventTypePaymentPaid          = "payment.paid"
	EventTypePaymentRefunded      = "payment.refunded"
)

type AppointmentConfirmedEvent struct {
	BaseEvent
	AppointmentID int64     `json:"appointment_id"`
	CompanyID     int64     `json:"company_id"`
	ClientID      int64     `json:"client_id"`
	StartsAt      time.Time `json:"starts_at"`
}

func NewAppointmentConfirmedEvent(appointmentID, companyID, clientID int64, startsAt time.Time) *AppointmentConfirmedEvent {
	return &AppointmentConfirmedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAppointmentConfirmed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"appointment_id": appointmentID,
				"company_id":     companyID,
				"client_id":      clientID,
				"starts_at":      startsAt,
			},
		},
		AppointmentID: appointmentID,
		CompanyID:     companyID,
		ClientID:      clientID,
		StartsAt:      startsAt,
	}
}

type AppointmentCancelledEvent struct {
	BaseEvent
	AppointmentID int64  `json:"appointment_id"`
	CompanyID     int64  `json:"company_id"`
	ClientID      int64  `json:"client_id"`
	Reason        string `json:"reason"`
}

func NewAppointmentCancelledEvent(appointmentID, companyID, clientID int64, reason string) *AppointmentCancelledEvent {
	return &AppointmentCancelledEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAppointmentCancelled,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"appointment_id": appointmentID,
				"company_id":     companyID,
				"client_id":      clientID,
				"reason":         reason,
			},
		},
		AppointmentID: appointmentID,
		CompanyID:     companyID,
		ClientID:      clientID,
		Reason:        reason,
	}
}

type PaymentPaidEvent struct {
	BaseEvent
	PaymentID     int64  `json:"payment_id"`
	AppointmentID int64  `json:"appointment_id"`
	CompanyID     int64  `json:"company_id"`
	AmountCents   int64  `json:"amount_cents"`
	Method        string `json:"method"`
}

func NewPaymentPaidEvent(paymentID, appointmentID, companyID, amountCents int64, method string) *PaymentPaidEvent {
	return &PaymentPaidEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentPaid,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payment_id":     paymentID,
				"appointment_id": appointmentID,
				"company_id":     companyID,
				"amount_cents":   amountCents,
				"method":         method,
			},
		},
		PaymentID:     paymentID,
		AppointmentID: appointmentID,
		CompanyID:     companyID,
		AmountCents:   amountCents,
		Method:        method,
	}
}

type PaymentRefundedEvent struct {
	BaseEvent
	PaymentID     int64 `json:"payment_id"`
	AppointmentID int64 `json:"appointment_id"`
	CompanyID     int64 `json:"company_id"`
	AmountCents   int64 `json:"amount_cents"`
}

func NewPaymentRefundedEvent(paymentID, appointmentID, companyID, amountCents int64) *PaymentRefundedEvent {
	return &PaymentRefundedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypePaymentRefunded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"payment_id":     paymentID,
				"appointment_id": appointmentID,
				"company_id":     companyID,
				"amount_cents":   amountCents,
			},
		},
		PaymentID:     paymentID,
		AppointmentID: appointmentID,
		CompanyID:     companyID,
		AmountCents:   amountCents,
	}
}
