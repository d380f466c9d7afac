package authz

import (
	"context"
	"log/slog"

	"github.com/IgorMello0/auraia-hub/internal"
)

// Service is the permission administration surface: listing and toggling
// grants for a target principal. Caller authorization lives here, not in
// the decision engine.
type Service struct {
	modules   ModuleLister
	grants    GrantRepository
	directory EmployeeDirectory
	logger    *slog.Logger
}

func NewService(modules ModuleLister, grants GrantRepository, directory EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		modules:   modules,
		grants:    grants,
		directory: directory,
		logger:    logger,
	}
}

// GetPermissions returns one entry per active module for the target
// principal, synthesizing has_access from the stored grant or, when no row
// exists, from the account type's default policy. The admin UI therefore
// always sees effective access, not just stored rows.
func (s *Service) GetPermissions(ctx context.Context, caller *internal.Principal, accountType internal.AccountType, principalID int64) ([]EffectivePermission, error) {
	if err := s.authorizeCaller(ctx, caller, accountType, principalID); err != nil {
		return nil, err
	}

	modules, err := s.modules.GetAllActive(ctx)
	if err != nil {
		s.logger.Error("failed to list modules", "error", err)
		return nil, err
	}

	grants, err := s.grants.FindGrantsForPrincipal(ctx, accountType, principalID)
	if err != nil {
		s.logger.Error("failed to list grants", "error", err, "principal_id", principalID)
		return nil, err
	}

	byModule := make(map[int64]*Grant, len(grants))
	for _, g := range grants {
		byModule[g.ModuleID] = g
	}

	perms := make([]EffectivePermission, 0, len(modules))
	for _, m := range modules {
		perm := EffectivePermission{
			ModuleID:   m.ID,
			ModuleCode: m.Code,
			ModuleName: m.Name,
			HasAccess:  DefaultAccess(accountType),
		}
		if g, ok := byModule[m.ID]; ok {
			perm.HasAccess = g.HasAccess
			perm.Explicit = true
		}
		perms = append(perms, perm)
	}

	return perms, nil
}

// SetPermission upserts the grant row for (principal, module) and returns
// the resulting effective permission. Repeating the same call is a no-op.
func (s *Service) SetPermission(ctx context.Context, caller *internal.Principal, accountType internal.AccountType, principalID, moduleID int64, hasAccess bool) (*EffectivePermission, error) {
	if err := s.authorizeCaller(ctx, caller, accountType, principalID); err != nil {
		return nil, err
	}

	module, err := s.modules.GetByID(ctx, moduleID)
	if err != nil {
		s.logger.Error("failed to look up module", "error", err, "module_id", moduleID)
		return nil, err
	}
	if module == nil {
		return nil, internal.ErrModuleNotFound
	}

	grant, err := s.grants.UpsertGrant(ctx, accountType, principalID, moduleID, hasAccess)
	if err != nil {
		s.logger.Error("failed to upsert grant", "error", err,
			"account_type", accountType,
			"principal_id", principalID,
			"module_id", moduleID)
		return nil, err
	}

	s.logger.Info("permission updated",
		"caller_id", caller.ID,
		"account_type", accountType,
		"principal_id", principalID,
		"module_code", module.Code,
		"has_access", hasAccess)

	return &EffectivePermission{
		ModuleID:   module.ID,
		ModuleCode: module.Code,
		ModuleName: module.Name,
		HasAccess:  grant.HasAccess,
		Explicit:   true,
	}, nil
}

// authorizeCaller enforces who may administer whom: a professional manages
// their own grants and those of their employees; an admin employee manages
// principals of their own company. Everyone else is refused.
//
// Note: an employee grant is not checked against the granting
// professional's own effective access; the reference behavior permits a
// professional to grant an employee a module the professional is denied.
func (s *Service) authorizeCaller(ctx context.Context, caller *internal.Principal, accountType internal.AccountType, principalID int64) error {
	if caller == nil {
		return internal.ErrUnauthenticated
	}

	switch accountType {
	case internal.AccountTypeProfessional, internal.AccountTypeEmployee:
	default:
		return internal.ErrInvalidAccountType
	}

	switch {
	case caller.AccountType == internal.AccountTypeProfessional:
		if accountType == internal.AccountTypeProfessional {
			if caller.ID != principalID {
				return internal.ErrForbidden
			}
			return nil
		}
		profID, err := s.directory.GetEmployeeProfessionalID(ctx, principalID)
		if err != nil {
			return internal.ErrEmployeeNotFound
		}
		if profID != caller.ID {
			return internal.ErrForbidden
		}
		return nil

	case caller.IsAdminEmployee():
		if caller.CompanyID == nil {
			return internal.ErrForbidden
		}
		if accountType == internal.AccountTypeProfessional {
			if *caller.CompanyID != principalID {
				return internal.ErrForbidden
			}
			return nil
		}
		profID, err := s.directory.GetEmployeeProfessionalID(ctx, principalID)
		if err != nil {
			return internal.ErrEmployeeNotFound
		}
		if profID != *caller.CompanyID {
			return internal.ErrForbidden
		}
		return nil
	}

	return internal.ErrForbidden
}
