package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	paymentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/payment"
	"github.com/IgorMello0/auraia-hub/internal/core/events"
)

type Repository interface {
	Create(ctx context.Context, p *paymentDatamodel.Payment) error
	GetByID(ctx context.Context, companyID, id int64) (*paymentDatamodel.Payment, error)
	List(ctx context.Context, companyID int64, query ListPaymentsQuery) ([]*paymentDatamodel.Payment, error)
	Update(ctx context.Context, p *paymentDatamodel.Payment) error
}

type AppointmentChecker interface {
	Exists(ctx context.Context, companyID, appointmentID int64) (bool, error)
}

// Service records charges against appointments. A payment is pending until
// marked paid; only paid payments can be refunded and both transitions are
// one-way.
type Service struct {
	repo         Repository
	appointments AppointmentChecker
	eventBus     *events.EventBus
	logger       *slog.Logger
}

func NewService(repo Repository, appointments AppointmentChecker, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		eventBus:     eventBus,
		logger:       logger,
	}
}

func (s *Service) CreatePayment(ctx context.Context, companyID int64, dto CreatePaymentDTO) (*paymentDatamodel.Payment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payment validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	exists, err := s.appointments.Exists(ctx, companyID, dto.AppointmentID)
	if err != nil {
		s.logger.Error("failed to check appointment", "error", err, "appointment_id", dto.AppointmentID)
		return nil, err
	}
	if !exists {
		return nil, internal.ErrAppointmentNotFound
	}

	p := &paymentDatamodel.Payment{
		CompanyID:     companyID,
		AppointmentID: dto.AppointmentID,
		AmountCents:   dto.AmountCents,
		Method:        dto.Method,
		Status:        paymentDatamodel.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create payment", "error", err, "company_id", companyID)
		return nil, err
	}

	s.logger.Info("payment created",
		"payment_id", p.ID,
		"company_id", companyID,
		"appointment_id", dto.AppointmentID,
		"amount_cents", dto.AmountCents)

	return p, nil
}

func (s *Service) GetPayment(ctx context.Context, companyID, id int64) (*paymentDatamodel.Payment, error) {
	p, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		s.logger.Error("failed to get payment", "error", err, "payment_id", id)
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrPaymentNotFound
	}
	return p, nil
}

func (s *Service) ListPayments(ctx context.Context, companyID int64, query ListPaymentsQuery) ([]*paymentDatamodel.Payment, error) {
	if query.Limit <= 0 || query.Limit > 100 {
		query.Limit = 20
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	return s.repo.List(ctx, companyID, query)
}

func (s *Service) MarkPaid(ctx context.Context, companyID, id int64) (*paymentDatamodel.Payment, error) {
	p, err := s.GetPayment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p.Status != paymentDatamodel.StatusPending {
		s.logger.Warn("cannot mark payment paid in current status",
			"payment_id", id,
			"current_status", p.Status)
		return nil, internal.ErrCannotModifyPayment
	}

	now := time.Now()
	p.Status = paymentDatamodel.StatusPaid
	p.PaidAt = &now
	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("failed to mark payment paid", "error", err, "payment_id", id)
		return nil, err
	}

	s.logger.Info("payment marked paid", "payment_id", id, "company_id", companyID, "amount_cents", p.AmountCents)

	if s.eventBus != nil {
		event := events.NewPaymentPaidEvent(p.ID, p.AppointmentID, p.CompanyID, p.AmountCents, p.Method)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish payment paid event", "error", err, "payment_id", id)
		}
	}

	return p, nil
}

func (s *Service) RefundPayment(ctx context.Context, companyID, id int64) (*paymentDatamodel.Payment, error) {
	p, err := s.GetPayment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p.Status != paymentDatamodel.StatusPaid {
		s.logger.Warn("cannot refund payment in current status",
			"payment_id", id,
			"current_status", p.Status)
		return nil, internal.ErrCannotModifyPayment
	}

	now := time.Now()
	p.Status = paymentDatamodel.StatusRefunded
	p.RefundedAt = &now
	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("failed to refund payment", "error", err, "payment_id", id)
		return nil, err
	}

	s.logger.Info("payment refunded", "payment_id", id, "company_id", companyID, "amount_cents", p.AmountCents)

	if s.eventBus != nil {
		event := events.NewPaymentRefundedEvent(p.ID, p.AppointmentID, p.CompanyID, p.AmountCents)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish payment refunded event", "error", err, "payment_id", id)
		}
	}

	return p, nil
}
