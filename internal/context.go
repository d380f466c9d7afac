package internal

import (
	"context"
	"time"
)

// AccountType partitions authenticated identities. Professionals own a
// tenant, employees belong to one, clients only book through the public
// surface and never reach module-gated routes.
type AccountType string

const (
	AccountTypeProfessional AccountType = "professional"
	AccountTypeEmployee     AccountType = "employee"
	AccountTypeClient       AccountType = "client"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeProfessional, AccountTypeEmployee, AccountTypeClient:
		return true
	}
	return false
}

// RoleAdmin is the employee role that bypasses every module check.
const RoleAdmin = "admin"

// Principal is the authenticated identity attached to a request. It is
// built once from verified token claims and never persisted.
type Principal struct {
	ID          int64
	AccountType AccountType
	Role        string
	CompanyID   *int64
}

func (p *Principal) IsAdminEmployee() bool {
	return p.AccountType == AccountTypeEmployee && p.Role == RoleAdmin
}

// TenantID resolves the company scope every CRM record hangs off. For
// professionals this is their own ID; for employees and clients it is the
// owning professional's ID carried in the token.
func (p *Principal) TenantID() int64 {
	if p.AccountType == AccountTypeProfessional {
		return p.ID
	}
	if p.CompanyID != nil {
		return *p.CompanyID
	}
	return 0
}

type ctxKey string

const ContextPrincipalKey ctxKey = "principal"

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(ContextPrincipalKey).(*Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}

func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ContextPrincipalKey, p)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
