package appointment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	appointmentDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/appointment"
	"github.com/IgorMello0/auraia-hub/internal/transport"
	"github.com/IgorMello0/auraia-hub/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateAppointment(ctx context.Context, companyID int64, dto CreateAppointmentDTO) (*appointmentDatamodel.Appointment, error)
	GetAppointment(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error)
	ListAppointments(ctx context.Context, companyID int64, query ListAppointmentsQuery) ([]*appointmentDatamodel.Appointment, error)
	UpdateAppointment(ctx context.Context, companyID, id int64, dto UpdateAppointmentDTO) (*appointmentDatamodel.Appointment, error)
	ConfirmAppointment(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error)
	CancelAppointment(ctx context.Context, companyID, id int64, reason string) (*appointmentDatamodel.Appointment, error)
	CompleteAppointment(ctx context.Context, companyID, id int64) (*appointmentDatamodel.Appointment, error)
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

func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (*internal.Principal, bool) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	return p, true
}

func (h *Handler) appointmentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid appointment ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	var dto CreateAppointmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateAppointment: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appt, err := h.Service.CreateAppointment(r.Context(), p.TenantID(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appt, err := h.Service.GetAppointment(r.Context(), p.TenantID(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, appt)
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}

	query := ListAppointmentsQuery{Limit: 20}
	q := r.URL.Query()

	if clientIDStr := q.Get("client_id"); clientIDStr != "" {
		if clientID, err := strconv.ParseInt(clientIDStr, 10, 64); err == nil {
			query.ClientID = &clientID
		}
	}
	query.Status = q.Get("status")
	if fromStr := q.Get("from"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			query.From = &from
		}
	}
	if toStr := q.Get("to"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			query.To = &to
		}
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			query.Limit = l
		}
	}
	if offsetStr := q.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			query.Offset = o
		}
	}

	appts, err := h.Service.ListAppointments(r.Context(), p.TenantID(), query)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, appts)
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	var dto UpdateAppointmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	appt, err := h.Service.UpdateAppointment(r.Context(), p.TenantID(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, appt)
}

func (h *Handler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appt, err := h.Service.ConfirmAppointment(r.Context(), p.TenantID(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, appt)
}

func (h *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	var dto CancelAppointmentDTO
	if r.Body != nil {
		// Reason is optional; an empty body cancels without one.
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	appt, err := h.Service.CancelAppointment(r.Context(), p.TenantID(), id, dto.Reason)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, appt)
}

func (h *Handler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	p, ok := h.principal(w, r)
	if !ok {
		return
	}
	id, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appt, err := h.Service.CompleteAppointment(r.Context(), p.TenantID(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, appt)
}
