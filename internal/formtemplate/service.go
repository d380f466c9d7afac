package formtemplate

import (
	"context"
	"log/slog"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	formtemplateDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/formtemplate"
)

type Repository interface {
	Create(ctx context.Context, t *formtemplateDatamodel.FormTemplate) error
	GetByID(ctx context.Context, companyID, id int64) (*formtemplateDatamodel.FormTemplate, error)
	List(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*formtemplateDatamodel.FormTemplate, error)
	Update(ctx context.Context, t *formtemplateDatamodel.FormTemplate) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateTemplate(ctx context.Context, companyID int64, dto CreateTemplateDTO) (*formtemplateDatamodel.FormTemplate, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("template validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	fields := "[]"
	if len(dto.Fields) > 0 {
		fields = string(dto.Fields)
	}

	t := &formtemplateDatamodel.FormTemplate{
		CompanyID: companyID,
		Title:     dto.Title,
		Fields:    fields,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("failed to create template", "error", err, "company_id", companyID)
		return nil, err
	}

	s.logger.Info("form template created", "template_id", t.ID, "company_id", companyID)
	return t, nil
}

func (s *Service) GetTemplate(ctx context.Context, companyID, id int64) (*formtemplateDatamodel.FormTemplate, error) {
	t, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		s.logger.Error("failed to get template", "error", err, "template_id", id)
		return nil, err
	}
	if t == nil {
		return nil, internal.ErrTemplateNotFound
	}
	return t, nil
}

func (s *Service) ListTemplates(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*formtemplateDatamodel.FormTemplate, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, companyID, activeOnly, limit, offset)
}

func (s *Service) UpdateTemplate(ctx context.Context, companyID, id int64, dto UpdateTemplateDTO) (*formtemplateDatamodel.FormTemplate, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t, err := s.GetTemplate(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		t.Title = *dto.Title
	}
	if dto.Fields != nil {
		t.Fields = string(dto.Fields)
	}
	if dto.IsActive != nil {
		t.IsActive = *dto.IsActive
	}
	t.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("failed to update template", "error", err, "template_id", id)
		return nil, err
	}

	return t, nil
}

func (s *Service) DeactivateTemplate(ctx context.Context, companyID, id int64) error {
	t, err := s.GetTemplate(ctx, companyID, id)
	if err != nil {
		return err
	}

	t.IsActive = false
	t.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("failed to deactivate template", "error", err, "template_id", id)
		return err
	}

	s.logger.Info("form template deactivated", "template_id", id, "company_id", companyID)
	return nil
}
