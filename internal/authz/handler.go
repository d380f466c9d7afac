package authz

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/transport"
	"github.com/IgorMello0/auraia-hub/pkg/logger"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) target(r *http.Request) (internal.AccountType, int64, bool) {
	accountType := internal.AccountType(chi.URLParam(r, "accountType"))
	if accountType != internal.AccountTypeProfessional && accountType != internal.AccountTypeEmployee {
		return "", 0, false
	}

	idStr := chi.URLParam(r, "principalID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, false
	}

	return accountType, id, true
}

// GetPermissions lists effective access to every active module for the
// target principal.
func (h *Handler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	caller, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	accountType, principalID, ok := h.target(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid account type or principal id")
		return
	}

	perms, err := h.Service.GetPermissions(r.Context(), caller, accountType, principalID)
	if err != nil {
		h.Logger.Error("GetPermissions: service error", "error", err,
			"caller_id", caller.ID, "principal_id", principalID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, PermissionsResponse{Permissions: perms})
}

// SetPermission upserts one grant for the target principal.
func (h *Handler) SetPermission(w http.ResponseWriter, r *http.Request) {
	caller, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	accountType, principalID, ok := h.target(r)
	if !ok {
		h.WriteError(w, http.StatusBadRequest, "invalid account type or principal id")
		return
	}

	var dto SetPermissionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	perm, err := h.Service.SetPermission(r.Context(), caller, accountType, principalID, dto.ModuleID, dto.HasAccess)
	if err != nil {
		h.Logger.Error("SetPermission: service error", "error", err,
			"caller_id", caller.ID, "principal_id", principalID, "module_id", dto.ModuleID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, perm)
}
