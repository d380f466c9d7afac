package module

import (
	"context"
	"log/slog"
	"strings"

	"github.com/IgorMello0/auraia-hub/internal"
	moduleDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/module"
)

// Repository is the registry storage. GetByCode/GetByID return nil, nil for
// missing rows.
type Repository interface {
	GetByCode(ctx context.Context, code string) (*moduleDatamodel.Module, error)
	GetByID(ctx context.Context, id int64) (*moduleDatamodel.Module, error)
	GetAllActive(ctx context.Context) ([]*moduleDatamodel.Module, error)
	GetAll(ctx context.Context) ([]*moduleDatamodel.Module, error)
	Create(ctx context.Context, m *moduleDatamodel.Module) error
	Update(ctx context.Context, m *moduleDatamodel.Module) error
}

// Service manages the module registry. Registry changes take effect on the
// next access check; there is no cache to invalidate.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) ListModules(ctx context.Context, includeInactive bool) ([]*moduleDatamodel.Module, error) {
	if includeInactive {
		return s.repo.GetAll(ctx)
	}
	return s.repo.GetAllActive(ctx)
}

func (s *Service) GetModule(ctx context.Context, id int64) (*moduleDatamodel.Module, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get module", "error", err, "module_id", id)
		return nil, err
	}
	if m == nil {
		return nil, internal.ErrModuleNotFound
	}
	return m, nil
}

func (s *Service) CreateModule(ctx context.Context, dto CreateModuleDTO) (*moduleDatamodel.Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByCode(ctx, dto.Code)
	if err != nil {
		s.logger.Error("failed to check module code", "error", err, "code", dto.Code)
		return nil, err
	}
	if existing != nil {
		return nil, internal.ErrDuplicateModuleCode
	}

	m := &moduleDatamodel.Module{
		Code:     dto.Code,
		Name:     dto.Name,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		// The unique index can still reject a concurrent insert after the
		// pre-check passed.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return nil, internal.ErrDuplicateModuleCode
		}
		s.logger.Error("failed to create module", "error", err, "code", dto.Code)
		return nil, err
	}

	s.logger.Info("module created", "module_id", m.ID, "code", m.Code)
	return m, nil
}

// UpdateModule changes the display name and/or the active flag. The code is
// immutable once created since grant rows and route gates reference it.
func (s *Service) UpdateModule(ctx context.Context, id int64, dto UpdateModuleDTO) (*moduleDatamodel.Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get module for update", "error", err, "module_id", id)
		return nil, err
	}
	if m == nil {
		return nil, internal.ErrModuleNotFound
	}

	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(ctx, m); err != nil {
		s.logger.Error("failed to update module", "error", err, "module_id", id)
		return nil, err
	}

	s.logger.Info("module updated", "module_id", m.ID, "code", m.Code, "is_active", m.IsActive)
	return m, nil
}
