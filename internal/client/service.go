package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	clientDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/client"
)

type Repository interface {
	Create(ctx context.Context, c *clientDatamodel.Client) error
	GetByID(ctx context.Context, companyID, id int64) (*clientDatamodel.Client, error)
	List(ctx context.Context, companyID int64, search string, limit, offset int) ([]*clientDatamodel.Client, error)
	Update(ctx context.Context, c *clientDatamodel.Client) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateClient(ctx context.Context, companyID int64, dto CreateClientDTO) (*clientDatamodel.Client, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("client validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	c := &clientDatamodel.Client{
		CompanyID: companyID,
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Notes:     dto.Notes,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create client", "error", err, "company_id", companyID)
		return nil, err
	}

	s.logger.Info("client created", "client_id", c.ID, "company_id", companyID)
	return c, nil
}

func (s *Service) GetClient(ctx context.Context, companyID, id int64) (*clientDatamodel.Client, error) {
	c, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		s.logger.Error("failed to get client", "error", err, "client_id", id)
		return nil, err
	}
	if c == nil {
		return nil, internal.ErrClientNotFound
	}
	return c, nil
}

func (s *Service) ListClients(ctx context.Context, companyID int64, search string, limit, offset int) ([]*clientDatamodel.Client, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, companyID, search, limit, offset)
}

func (s *Service) UpdateClient(ctx context.Context, companyID, id int64, dto UpdateClientDTO) (*clientDatamodel.Client, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	c, err := s.GetClient(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Email != nil {
		c.Email = *dto.Email
	}
	if dto.Phone != nil {
		c.Phone = *dto.Phone
	}
	if dto.Notes != nil {
		c.Notes = *dto.Notes
	}
	if dto.IsActive != nil {
		c.IsActive = *dto.IsActive
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("failed to update client", "error", err, "client_id", id)
		return nil, err
	}

	return c, nil
}

// ArchiveClient soft-deletes. Appointments keep referencing the archived
// client for history.
func (s *Service) ArchiveClient(ctx context.Context, companyID, id int64) error {
	c, err := s.GetClient(ctx, companyID, id)
	if err != nil {
		return err
	}

	c.IsActive = false
	c.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, c); err != nil {
		s.logger.Error("failed to archive client", "error", err, "client_id", id)
		return err
	}

	s.logger.Info("client archived", "client_id", id, "company_id", companyID)
	return nil
}

// Exists reports whether an active client belongs to the company. Used by
// the booking flow before accepting an appointment.
func (s *Service) Exists(ctx context.Context, companyID, clientID int64) (bool, error) {
	c, err := s.repo.GetByID(ctx, companyID, clientID)
	if err != nil {
		return false, err
	}
	return c != nil && c.IsActive, nil
}
