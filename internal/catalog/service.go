package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	catalogDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/catalog"
)

type Repository interface {
	Create(ctx context.Context, item *catalogDatamodel.CatalogItem) error
	GetByID(ctx context.Context, companyID, id int64) (*catalogDatamodel.CatalogItem, error)
	List(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*catalogDatamodel.CatalogItem, error)
	Update(ctx context.Context, item *catalogDatamodel.CatalogItem) error
}

// Service manages the bookable service offerings of a company.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateItem(ctx context.Context, companyID int64, dto CreateCatalogItemDTO) (*catalogDatamodel.CatalogItem, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("catalog item validation failed", "error", err, "company_id", companyID)
		return nil, err
	}

	item := &catalogDatamodel.CatalogItem{
		CompanyID:       companyID,
		Name:            dto.Name,
		Description:     dto.Description,
		PriceCents:      dto.PriceCents,
		DurationMinutes: dto.DurationMinutes,
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Error("failed to create catalog item", "error", err, "company_id", companyID)
		return nil, err
	}

	s.logger.Info("catalog item created", "item_id", item.ID, "company_id", companyID, "price_cents", item.PriceCents)
	return item, nil
}

func (s *Service) GetItem(ctx context.Context, companyID, id int64) (*catalogDatamodel.CatalogItem, error) {
	item, err := s.repo.GetByID(ctx, companyID, id)
	if err != nil {
		s.logger.Error("failed to get catalog item", "error", err, "item_id", id)
		return nil, err
	}
	if item == nil {
		return nil, internal.ErrCatalogItemNotFound
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*catalogDatamodel.CatalogItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, companyID, activeOnly, limit, offset)
}

func (s *Service) UpdateItem(ctx context.Context, companyID, id int64, dto UpdateCatalogItemDTO) (*catalogDatamodel.CatalogItem, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item, err := s.GetItem(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		item.Name = *dto.Name
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.PriceCents != nil {
		item.PriceCents = *dto.PriceCents
	}
	if dto.DurationMinutes != nil {
		item.DurationMinutes = *dto.DurationMinutes
	}
	if dto.IsActive != nil {
		item.IsActive = *dto.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("failed to update catalog item", "error", err, "item_id", id)
		return nil, err
	}

	return item, nil
}

// DeactivateItem hides the item from new bookings. Existing appointments
// keep their reference.
func (s *Service) DeactivateItem(ctx context.Context, companyID, id int64) error {
	item, err := s.GetItem(ctx, companyID, id)
	if err != nil {
		return err
	}

	item.IsActive = false
	item.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, item); err != nil {
		s.logger.Error("failed to deactivate catalog item", "error", err, "item_id", id)
		return err
	}

	s.logger.Info("catalog item deactivated", "item_id", id, "company_id", companyID)
	return nil
}
