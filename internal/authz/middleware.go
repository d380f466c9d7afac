package authz

import (
	"log/slog"
	"net/http"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/transport"
)

// Authorization wraps module-gated routes. It is generic: callers supply
// only the module code at route registration time.
type Authorization struct {
	*transport.BaseHandler
	engine *Engine
	logger *slog.Logger
}

func NewAuthorization(engine *Engine, logger *slog.Logger) *Authorization {
	return &Authorization{
		BaseHandler: transport.NewBaseHandler(logger),
		engine:      engine,
		logger:      logger,
	}
}

// RequireModule only lets the downstream handler run when the decision
// engine allows the principal into the named module. On allow the wrapped
// handler's response is returned unchanged.
func (a *Authorization) RequireModule(moduleCode string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := internal.PrincipalFromContext(r.Context())
			if !ok {
				a.logger.Warn("module check without principal", "module_code", moduleCode, "path", r.URL.Path)
				a.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			decision, err := a.engine.Decide(r.Context(), principal, moduleCode)
			if err != nil {
				a.logger.ErrorContext(r.Context(), "module decision failed",
					"error", err,
					"module_code", moduleCode,
					"principal_id", principal.ID)
				a.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			if !decision.Allowed {
				// Registry drift is an operator problem, not a client one.
				if decision.Reason == ReasonModuleNotConfigured {
					a.WriteError(w, http.StatusInternalServerError, "module is not configured")
					return
				}
				a.logger.WarnContext(r.Context(), "module access denied",
					"module_code", moduleCode,
					"principal_id", principal.ID,
					"account_type", principal.AccountType,
					"reason", decision.Reason)
				a.WriteError(w, http.StatusForbidden, "access to this module is denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdministrator gates the administration surface: only a
// professional (managing their own company) or an admin employee may pass.
func (a *Authorization) RequireAdministrator() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := internal.PrincipalFromContext(r.Context())
			if !ok {
				a.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if principal.AccountType != internal.AccountTypeProfessional && !principal.IsAdminEmployee() {
				a.logger.WarnContext(r.Context(), "administration access denied",
					"principal_id", principal.ID,
					"account_type", principal.AccountType,
					"role", principal.Role)
				a.WriteError(w, http.StatusForbidden, "administrator rights required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
