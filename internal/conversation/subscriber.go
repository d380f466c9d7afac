package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IgorMello0/auraia-hub/internal/core/events"
)

// Subscriber turns scheduling and billing events into system messages in
// the client's chat thread. Payment events carry no client ID, so a
// resolver maps the appointment back to its client.
type Subscriber struct {
	service  *Service
	resolver AppointmentClientResolver
	logger   *slog.Logger
}

type AppointmentClientResolver interface {
	ClientIDForAppointment(ctx context.Context, companyID, appointmentID int64) (int64, error)
}

func NewSubscriber(service *Service, resolver AppointmentClientResolver, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		service:  service,
		resolver: resolver,
		logger:   logger,
	}
}

func (s *Subscriber) Register(bus *events.EventBus) {
	bus.Subscribe(events.EventTypeAppointmentConfirmed, s.onAppointmentConfirmed)
	bus.Subscribe(events.EventTypeAppointmentCancelled, s.onAppointmentCancelled)
	bus.Subscribe(events.EventTypePaymentPaid, s.onPaymentPaid)
	bus.Subscribe(events.EventTypePaymentRefunded, s.onPaymentRefunded)
}

func (s *Subscriber) onAppointmentConfirmed(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.AppointmentConfirmedEvent)
	if !ok {
		return nil
	}

	body := fmt.Sprintf("Seu agendamento foi confirmado para %s.", e.StartsAt.Format("02/01/2006 15:04"))
	if err := s.service.PostSystemMessage(ctx, e.CompanyID, e.ClientID, body); err != nil {
		s.logger.Error("failed to post confirmation message", "error", err, "appointment_id", e.AppointmentID)
		return err
	}
	return nil
}

func (s *Subscriber) onAppointmentCancelled(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.AppointmentCancelledEvent)
	if !ok {
		return nil
	}

	body := "Seu agendamento foi cancelado."
	if e.Reason != "" {
		body = fmt.Sprintf("Seu agendamento foi cancelado. Motivo: %s", e.Reason)
	}
	if err := s.service.PostSystemMessage(ctx, e.CompanyID, e.ClientID, body); err != nil {
		s.logger.Error("failed to post cancellation message", "error", err, "appointment_id", e.AppointmentID)
		return err
	}
	return nil
}

func (s *Subscriber) onPaymentPaid(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.PaymentPaidEvent)
	if !ok {
		return nil
	}

	clientID, err := s.resolver.ClientIDForAppointment(ctx, e.CompanyID, e.AppointmentID)
	if err != nil {
		s.logger.Error("failed to resolve client for payment", "error", err, "payment_id", e.PaymentID)
		return err
	}

	body := fmt.Sprintf("Pagamento de R$ %.2f recebido.", float64(e.AmountCents)/100)
	if err := s.service.PostSystemMessage(ctx, e.CompanyID, clientID, body); err != nil {
		s.logger.Error("failed to post payment message", "error", err, "payment_id", e.PaymentID)
		return err
	}
	return nil
}

func (s *Subscriber) onPaymentRefunded(ctx context.Context, event events.Event) error {
	e, ok := event.(*events.PaymentRefundedEvent)
	if !ok {
		return nil
	}

	clientID, err := s.resolver.ClientIDForAppointment(ctx, e.CompanyID, e.AppointmentID)
	if err != nil {
		s.logger.Error("failed to resolve client for refund", "error", err, "payment_id", e.PaymentID)
		return err
	}

	body := fmt.Sprintf("Pagamento de R$ %.2f estornado.", float64(e.AmountCents)/100)
	if err := s.service.PostSystemMessage(ctx, e.CompanyID, clientID, body); err != nil {
		s.logger.Error("failed to post refund message", "error", err, "payment_id", e.PaymentID)
		return err
	}
	return nil
}
