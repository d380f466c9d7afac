package conversation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/IgorMello0/auraia-hub/internal"
	conversationDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/conversation"
	"github.com/IgorMello0/auraia-hub/internal/transport"
	"github.com/IgorMello0/auraia-hub/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	StartConversation(ctx context.Context, companyID int64, p *internal.Principal, dto StartConversationDTO) (*conversationDatamodel.Conversation, error)
	GetConversation(ctx context.Context, companyID, id int64) (*ConversationWithMessages, error)
	ListConversations(ctx context.Context, companyID int64, openOnly bool, limit, offset int) ([]*conversationDatamodel.Conversation, error)
	PostMessage(ctx context.Context, companyID, conversationID int64, p *internal.Principal, dto PostMessageDTO) (*conversationDatamodel.Message, error)
	CloseConversation(ctx context.Context, companyID, id int64) error
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

func (h *Handler) conversationID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid conversation ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto StartConversationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("StartConversation: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conv, err := h.Service.StartConversation(r.Context(), p.TenantID(), p, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, conv)
}

func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := h.conversationID(w, r)
	if !ok {
		return
	}

	conv, err := h.Service.GetConversation(r.Context(), p.TenantID(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, conv)
}

func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	q := r.URL.Query()
	openOnly := q.Get("include_closed") != "true"
	limit := 20
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

	conversations, err := h.Service.ListConversations(r.Context(), p.TenantID(), openOnly, limit, offset)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, conversations)
}

func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := h.conversationID(w, r)
	if !ok {
		return
	}

	var dto PostMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.Service.PostMessage(r.Context(), p.TenantID(), id, p, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, msg)
}

func (h *Handler) CloseConversation(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, ok := h.conversationID(w, r)
	if !ok {
		return
	}

	if err := h.Service.CloseConversation(r.Context(), p.TenantID(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "conversation closed"})
}
