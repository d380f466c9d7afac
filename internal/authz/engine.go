package authz

import (
	"context"
	"log/slog"

	"github.com/IgorMello0/auraia-hub/internal"
)

// Engine decides whether a principal may access a module. It is stateless
// and side-effect free: every decision re-reads the registry and the grant
// store, and it never writes.
type Engine struct {
	modules ModuleFinder
	grants  GrantRepository
	logger  *slog.Logger
}

func NewEngine(modules ModuleFinder, grants GrantRepository, logger *slog.Logger) *Engine {
	return &Engine{
		modules: modules,
		grants:  grants,
		logger:  logger,
	}
}

// Decide evaluates the access rules for one principal and module code.
// An error is returned only for infrastructure failures; every policy
// outcome, including module_not_configured, is expressed as a Decision.
//
// Rules, in order:
//  1. An employee with role "admin" is allowed unconditionally, even over
//     an explicit deny row and even for inactive modules.
//  2. Unknown module code is module_not_configured.
//  3. Professionals default open when no grant row exists, employees
//     default closed; an explicit row wins over the default either way.
//
// The engine never consults the employing professional's grants when
// deciding for an employee; composing the two is an administration-surface
// concern, not a decision rule.
func (e *Engine) Decide(ctx context.Context, principal *internal.Principal, moduleCode string) (Decision, error) {
	if principal.IsAdminEmployee() {
		return Decision{Allowed: true, Reason: ReasonAdminBypass}, nil
	}

	module, err := e.modules.GetByCode(ctx, moduleCode)
	if err != nil {
		return Decision{}, err
	}
	if module == nil {
		e.logger.Error("module referenced by route is not in the registry",
			"module_code", moduleCode,
			"principal_id", principal.ID,
			"account_type", principal.AccountType)
		return Decision{Allowed: false, Reason: ReasonModuleNotConfigured}, nil
	}

	switch principal.AccountType {
	case internal.AccountTypeProfessional, internal.AccountTypeEmployee:
	default:
		e.logger.Error("principal with unrecognized account type reached the engine",
			"account_type", principal.AccountType,
			"principal_id", principal.ID)
		return Decision{Allowed: false, Reason: ReasonInvalidAccountType, Module: module}, nil
	}

	grant, err := e.grants.FindGrant(ctx, principal.AccountType, principal.ID, module.ID)
	if err != nil {
		return Decision{}, err
	}

	if grant == nil {
		if DefaultAccess(principal.AccountType) {
			return Decision{Allowed: true, Reason: ReasonDefaultOpen, Module: module}, nil
		}
		return Decision{Allowed: false, Reason: ReasonDefaultClosed, Module: module}, nil
	}

	if grant.HasAccess {
		return Decision{Allowed: true, Reason: ReasonExplicitGrant, Module: module}, nil
	}
	return Decision{Allowed: false, Reason: ReasonExplicitDeny, Module: module}, nil
}
