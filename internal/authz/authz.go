package authz

import (
	"context"

	"github.com/IgorMello0/auraia-hub/internal"
	moduleDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/module"
)

// Grant is a stored access decision for one principal/module pair. Absence
// of a grant is meaningful and handled by the engine's default policies, so
// repositories return nil (not an error) when no row exists.
type Grant struct {
	PrincipalID int64
	ModuleID    int64
	HasAccess   bool
}

type ModuleFinder interface {
	GetByCode(ctx context.Context, code string) (*moduleDatamodel.Module, error)
}

type ModuleLister interface {
	ModuleFinder
	GetByID(ctx context.Context, id int64) (*moduleDatamodel.Module, error)
	GetAllActive(ctx context.Context) ([]*moduleDatamodel.Module, error)
}

type GrantRepository interface {
	FindGrant(ctx context.Context, accountType internal.AccountType, principalID, moduleID int64) (*Grant, error)
	UpsertGrant(ctx context.Context, accountType internal.AccountType, principalID, moduleID int64, hasAccess bool) (*Grant, error)
	FindGrantsForPrincipal(ctx context.Context, accountType internal.AccountType, principalID int64) ([]*Grant, error)
}

// EmployeeDirectory answers which professional an employee belongs to; used
// only by the administration surface to authorize the caller, never by the
// decision engine itself.
type EmployeeDirectory interface {
	GetEmployeeProfessionalID(ctx context.Context, employeeID int64) (int64, error)
}

// Reason explains a decision for logging and audit. ModuleNotConfigured is
// deliberately distinct from a normal denial: it means the route references
// a module code missing from the registry, which is operator error.
type Reason string

const (
	ReasonAdminBypass         Reason = "admin_bypass"
	ReasonDefaultOpen         Reason = "default_open"
	ReasonDefaultClosed       Reason = "default_closed"
	ReasonExplicitGrant       Reason = "explicit_grant"
	ReasonExplicitDeny        Reason = "explicit_deny"
	ReasonModuleNotConfigured Reason = "module_not_configured"
	ReasonInvalidAccountType  Reason = "invalid_account_type"
)

type Decision struct {
	Allowed bool
	Reason  Reason
	Module  *moduleDatamodel.Module
}

// EffectivePermission is what the administration UI sees: one entry per
// active module with has_access synthesized from the stored grant or the
// account type's default policy.
type EffectivePermission struct {
	ModuleID   int64  `json:"module_id"`
	ModuleCode string `json:"module_code"`
	ModuleName string `json:"module_name"`
	HasAccess  bool   `json:"has_access"`
	Explicit   bool   `json:"explicit"`
}

// DefaultAccess is the policy applied when no grant row exists.
// Professionals owned the product before module gating existed, so they
// default open; employees are provisioned per module, so they default
// closed.
func DefaultAccess(accountType internal.AccountType) bool {
	return accountType == internal.AccountTypeProfessional
}
