package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	appointmentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/appointment"
	"github.com/IgorMello0/auraia-hub/internal/core/events"
)

// Repository is tenant-scoped storage: every lookup carries the company ID
// so one tenant can never see another tenant's bookings.
type Repository interface {
	Create(ctx context.Context, appt *appointmentDatamodel.Appointment) error
	GetByID(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error)
	List(ctx context.Context, companyID int64, query ListAppointmentsQuery) ([]*appointmentDatamodel.Appointment, error)
	Update(ctx context.Context, appt *appointmentDatamodel.Appointment) error
	CountOverlapping(ctx context.Context, companyID int64, startsAt, endsAt time.Time, excludeID int64) (int64, error)
}

type ClientChecker interface {
	Exists(ctx context.Context, companyID, clientID int64) (bool, error)
}

// Service handles booking lifecycle: pending on creation, then confirmed,
// done or cancelled. Terminal states reject further transitions.
type Service struct {
	repo     Repository
	clients  ClientChecker
	eventBus *events.EventBus
	logger   *slog.Logger
}

func NewService(repo Repository, clients ClientChecker, eventBus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		clients:  clients,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *Service) CreateAppointment(ctx context.Context, companyID int64, dto CreateAppointmentDTO) (*appointmentDatamodel.Appointment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("appointment validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	exists, err := s.clients.Exists(ctx, companyID, dto.ClientID)
	if err != nil {
		s.logger.Error("failed to check client", "error", err, "client_id", dto.ClientID)
		return nil, err
	}
	if !exists {
		return nil, internal.ErrClientNotFound
	}

	overlapping, err := s.repo.CountOverlapping(ctx, companyID, dto.StartsAt, dto.EndsAt, 0)
	if err != nil {
		s.logger.Error("failed to check overlapping appointments", "error", err, "company_id", companyID)
		return nil, err
	}
	if overlapping > 0 {
		return nil, internal.NewConflictError("Time slot conflicts with an existing appointment", internal.ErrCodeInvalidDate)
	}

	appt := &appointmentDatamodel.Appointment{
		CompanyID:      companyID,
		ProfessionalID: companyID,
		ClientID:       dto.ClientID,
		CatalogItemID:  dto.CatalogItemID,
		StartsAt:       dto.StartsAt,
		EndsAt:         dto.EndsAt,
		Status:         appointmentDatamodel.StatusPending,
		Notes:          dto.Notes,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		s.logger.Error("failed to create appointment", "error", err, "company_id", companyID)
		return nil, err
	}

	s.logger.Info("appointment created",
		"appointment_id", appt.ID,
		"company_id", companyID,
		"client_id", dto.ClientID,
		"starts_at", dto.StartsAt)

	return appt, nil
}

func (s *Service) GetAppointment(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		s.logger.Error("failed to get appointment", "error", err, "appointment_id", id)
		return nil, err
	}
	if appt == nil {
		return nil, internal.ErrAppointmentNotFound
	}
	return appt, nil
}

// Exists reports whether the appointment belongs to the company. Used by
// the payment flow before accepting a charge.
func (s *Service) Exists(ctx context.Context, companyID, id int64) (bool, error) {
	appt, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return false, err
	}
	return appt != nil, nil
}

// ClientIDForAppointment resolves the booked client; the chat subscriber
// uses it to route payment notifications.
func (s *Service) ClientIDForAppointment(ctx context.Context, companyID, id int64) (int64, error) {
	appt, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return 0, err
	}
	if appt == nil {
		return 0, internal.ErrAppointmentNotFound
	}
	return appt.ClientID, nil
}

func (s *Service) ListAppointments(ctx context.Context, companyID int64, query ListAppointmentsQuery) ([]*appointmentDatamodel.Appointment, error) {
	if query.Limit <= 0 || query.Limit > 100 {
		query.Limit = 20
	}
	if query.Offset < 0 {
		query.Offset = 0
	}
	return s.repo.List(ctx, companyID, query)
}

func (s *Service) UpdateAppointment(ctx context.Context, companyID, id int64, dto UpdateAppointmentDTO) (*appointmentDatamodel.Appointment, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	appt, err := s.GetAppointment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == appointmentDatamodel.StatusDone || appt.Status == appointmentDatamodel.StatusCancelled {
		return nil, internal.ErrCannotModifyAppointment
	}

	if dto.StartsAt != nil {
		overlapping, err := s.repo.CountOverlapping(ctx, companyID, *dto.StartsAt, *dto.EndsAt, id)
		if err != nil {
			return nil, err
		}
		if overlapping > 0 {
			return nil, internal.NewConflictError("Time slot conflicts with an existing appointment", internal.ErrCodeInvalidDate)
		}
		appt.StartsAt = *dto.StartsAt
		appt.EndsAt = *dto.EndsAt
	}
	if dto.Notes != nil {
		appt.Notes = *dto.Notes
	}
	appt.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, appt); err != nil {
		s.logger.Error("failed to update appointment", "error", err, "appointment_id", id)
		return nil, err
	}

	return appt, nil
}

func (s *Service) ConfirmAppointment(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error) {
	appt, err := s.GetAppointment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != appointmentDatamodel.StatusPending {
		s.logger.Warn("cannot confirm appointment in current status",
			"appointment_id", id,
			"current_status", appt.Status)
		return nil, internal.ErrCannotModifyAppointment
	}

	appt.Status = appointmentDatamodel.StatusConfirmed
	appt.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, appt); err != nil {
		s.logger.Error("failed to confirm appointment", "error", err, "appointment_id", id)
		return nil, err
	}

	s.logger.Info("appointment confirmed", "appointment_id", id, "company_id", companyID)

	if s.eventBus != nil {
		event := events.NewAppointmentConfirmedEvent(appt.ID, appt.CompanyID, appt.ClientID, appt.StartsAt)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish appointment confirmed event", "error", err, "appointment_id", id)
		}
	}

	return appt, nil
}

func (s *Service) CancelAppointment(ctx context.Context, companyID, id int64, reason string) (*appointmentDatamodel.Appointment, error) {
	appt, err := s.GetAppointment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == appointmentDatamodel.StatusDone || appt.Status == appointmentDatamodel.StatusCancelled {
		s.logger.Warn("cannot cancel appointment in current status",
			"appointment_id", id,
			"current_status", appt.Status)
		return nil, internal.ErrCannotModifyAppointment
	}

	now := time.Now()
	appt.Status = appointmentDatamodel.StatusCancelled
	appt.CancelledAt = &now
	appt.UpdatedAt = now
	if err := s.repo.Update(ctx, appt); err != nil {
		s.logger.Error("failed to cancel appointment", "error", err, "appointment_id", id)
		return nil, err
	}

	s.logger.Info("appointment cancelled", "appointment_id", id, "company_id", companyID, "reason", reason)

	if s.eventBus != nil {
		event := events.NewAppointmentCancelledEvent(appt.ID, appt.CompanyID, appt.ClientID, reason)
		if err := s.eventBus.Publish(ctx, event); err != nil {
			s.logger.Error("failed to publish appointment cancelled event", "error", err, "appointment_id", id)
		}
	}

	return appt, nil
}

func (s *Service) CompleteAppointment(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error) {
	appt, err := s.GetAppointment(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != appointmentDatamodel.StatusConfirmed {
		s.logger.Warn("cannot complete appointment in current status",
			"appointment_id", id,
			"current_status", appt.Status)
		return nil, internal.ErrCannotModifyAppointment
	}

	appt.Status = appointmentDatamodel.StatusDone
	appt.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, appt); err != nil {
		s.logger.Error("failed to complete appointment", "error", err, "appointment_id", id)
		return nil, err
	}

	s.logger.Info("appointment completed", "appointment_id", id, "company_id", companyID)
	return appt, nil
}
