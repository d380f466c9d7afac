package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/IgorMello0/auraia-hub/internal"
	catalogDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/catalog"
	"github.com/IgorMello0/auraia-hub/internal/transport"
	"github.com/IgorMello0/auraia-hub/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateItem(ctx context.Context, companyID int64, dto CreateCatalogItemDTO) (*catalogDatamodel.CatalogItem, error)
	GetItem(ctx context.Context, companyID, id int64) (*catalogDatamodel.CatalogItem, error)
	ListItems(ctx context.Context, companyID int64, activeOnly bool, limit, offset int) ([]*catalogDatamodel.CatalogItem, error)
	UpdateItem(ctx context.Context, companyID, id int64, dto UpdateCatalogItemDTO) (*catalogDatamodel.CatalogItem, error)
	DeactivateItem(ctx context.Context, companyID, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid catalog item ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCatalogItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateItem: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.CreateItem(r.Context(), p.TenantID(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.Service.GetItem(r.Context(), p.TenantID(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	activeOnly := q.Get("include_inactive") != "true"
	limit := 50
	offset := 0
	if limitStr := q.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}

	items, err := h.Service.ListItems(r.Context(), p.TenantID(), activeOnly, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var dto UpdateCatalogItemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.UpdateItem(r.Context(), p.TenantID(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) DeactivateItem(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeactivateItem(r.Context(), p.TenantID(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "catalog item deactivated"})
}
