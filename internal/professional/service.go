package professional

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
	"github.com/IgorMello0/auraia-hub/internal/core/common/validation"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*accountDatamodel.Professional, error)
	Update(ctx context.Context, p *accountDatamodel.Professional) error
}

type UpdateProfileDTO struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (d *UpdateProfileDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		trimmed := strings.TrimSpace(*d.Name)
		d.Name = &trimmed
		v.Field("name", trimmed).Required().MaxLength(150)
	}
	if d.Phone != nil {
		v.Field("phone", *d.Phone).MaxLength(30)
	}
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

// ProfileResponse strips credentials from the account record.
type ProfileResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetProfile(ctx context.Context, id int64) (*ProfileResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get professional", "error", err, "professional_id", id)
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrProfessionalNotFound
	}

	return &ProfileResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
	}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, dto UpdateProfileDTO) (*ProfileResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrProfessionalNotFound
	}

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	if dto.Phone != nil {
		p.Phone = *dto.Phone
	}
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, p); err != nil {
		s.logger.Error("failed to update professional", "error", err, "professional_id", id)
		return nil, err
	}

	s.logger.Info("professional profile updated", "professional_id", id)
	return &ProfileResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
	}, nil
}
