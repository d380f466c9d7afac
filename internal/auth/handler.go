package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/IgorMello0/auraia-hub/internal/transport"
	"github.com/IgorMello0/auraia-hub/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokens, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err, "email", dto.Email)

		switch err {
		case ErrInvalidCredentials:
			h.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		case ErrAccountInactive:
			h.WriteError(w, http.StatusUnauthorized, "account is inactive")
		default:
			if _, ok := err.(ValidationError); ok {
				h.WriteError(w, http.StatusBadRequest, err.Error())
			} else {
				h.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var dto RefreshTokenDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, err := h.Service.RefreshTokens(dto.RefreshToken)
	if err != nil {
		h.Logger.Error("token refresh failed", "error", err)

		switch err {
		case ErrInvalidToken, ErrTokenExpired:
			h.WriteError(w, http.StatusUnauthorized, "invalid refresh token")
		case ErrAccountInactive:
			h.WriteError(w, http.StatusUnauthorized, "account is inactive")
		default:
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, tokens)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.ExtractTokenFromHeader(r)
	if token == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	if _, err := h.Service.ValidateAccessToken(token); err != nil {
		h.WriteError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Middleware verifies the bearer token per the route's requirement and
// attaches the resulting Principal to the request context. A token that is
// present but invalid is always rejected, even on optional routes; it is
// never silently downgraded to anonymous.
func (h *Handler) Middleware(requirement AuthRequirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requirement == AuthPublic {
				next.ServeHTTP(w, r)
				return
			}

			token := h.ExtractTokenFromHeader(r)
			if token == "" {
				if requirement == AuthOptional {
					next.ServeHTTP(w, r)
					return
				}
				h.Logger.Warn("auth middleware: missing authorization token", "path", r.URL.Path)
				h.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := h.Service.ValidateAccessToken(token)
			if err != nil {
				h.Logger.Warn("auth middleware: token rejected", "error", err, "path", r.URL.Path)
				h.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			principal, err := claims.Principal()
			if err != nil {
				h.Logger.Error("auth middleware: malformed claims", "error", err, "user_id", claims.UserID)
				h.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := internal.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
