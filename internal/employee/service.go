package employee

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/auth"
	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
)

type Repository interface {
	Create(ctx context.Context, e *accountDatamodel.Employee) error
	GetByID(ctx context.Context, professionalID, id int64) (*accountDatamodel.Employee, error)
	GetByEmail(ctx context.Context, email string) (*accountDatamodel.Employee, error)
	List(ctx context.Context, professionalID int64, limit, offset int) ([]*accountDatamodel.Employee, error)
	Update(ctx context.Context, e *accountDatamodel.Employee) error
}

// Service manages the team roster of a professional's company. Every
// lookup is scoped to the owning professional.
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func toResponse(e *accountDatamodel.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:             e.ID,
		ProfessionalID: e.ProfessionalID,
		Name:           e.Name,
		Email:          e.Email,
		Role:           e.Role,
		IsActive:       e.IsActive,
	}
}

func (s *Service) CreateEmployee(ctx context.Context, professionalID int64, dto CreateEmployeeDTO) (*EmployeeResponse, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("employee validation failed", "error", err, "professional_id", professionalID)
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, dto.Email)
	if err != nil {
		s.logger.Error("failed to check employee email", "error", err, "email", dto.Email)
		return nil, err
	}
	if existing != nil {
		return nil, internal.NewConflictError("Email is already in use", internal.ErrCodeValidationFailed)
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	e := &accountDatamodel.Employee{
		ProfessionalID: professionalID,
		Name:           dto.Name,
		Email:          dto.Email,
		PasswordHash:   hash,
		Role:           dto.Role,
		IsActive:       true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return nil, internal.NewConflictError("Email is already in use", internal.ErrCodeValidationFailed)
		}
		s.logger.Error("failed to create employee", "error", err, "professional_id", professionalID)
		return nil, err
	}

	s.logger.Info("employee created", "employee_id", e.ID, "professional_id", professionalID, "role", e.Role)
	return toResponse(e), nil
}

func (s *Service) GetEmployee(ctx context.Context, professionalID, id int64) (*EmployeeResponse, error) {
	e, err := s.repo.GetByID(ctx, professionalID, id)
	if err != nil {
		s.logger.Error("failed to get employee", "error", err, "employee_id", id)
		return nil, err
	}
	if e == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return toResponse(e), nil
}

func (s *Service) ListEmployees(ctx context.Context, professionalID int64, limit, offset int) ([]*EmployeeResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	employees, err := s.repo.List(ctx, professionalID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

func (s *Service) UpdateEmployee(ctx context.Context, professionalID, id int64, dto UpdateEmployeeDTO) (*EmployeeResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, professionalID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	if dto.Name != nil {
		e.Name = *dto.Name
	}
	if dto.Role != nil {
		e.Role = *dto.Role
	}
	if dto.IsActive != nil {
		e.IsActive = *dto.IsActive
	}
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id, "role", e.Role, "is_active", e.IsActive)
	return toResponse(e), nil
}

// DeactivateEmployee revokes login without deleting history. Stored module
// grants stay in place in case the account is reactivated.
func (s *Service) DeactivateEmployee(ctx context.Context, professionalID, id int64) error {
	e, err := s.repo.GetByID(ctx, professionalID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return internal.ErrEmployeeNotFound
	}

	e.IsActive = false
	e.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("failed to deactivate employee", "error", err, "employee_id", id)
		return err
	}

	s.logger.Info("employee deactivated", "employee_id", id, "professional_id", professionalID)
	return nil
}
