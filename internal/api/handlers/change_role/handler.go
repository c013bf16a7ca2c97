package change_role

import (
	"errors"
	"net/http"

	"github.com/pbp-kelompok-b10/any-venue/internal/api/handlers"
	"github.com/pbp-kelompok-b10/any-venue/internal/api/middleware"
	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/internal/service/profiles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRole        = "некорректная роль, ожидается USER или OWNER"
	msgProfileNotFound    = "профиль не найден"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/me/role
// Новая роль действует в токенах, выданных после смены.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ChangeRoleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/role - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /me/role - Validation failed: user_id=%d, error=%v", session.UserID, err)
		handlers.RespondValidationError(w, err)
		return
	}

	result, err := h.service.ChangeRole(r.Context(), session.UserID, domain.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			h.logger.Warn("PUT /me/role - Invalid role: user_id=%d, role=%q", session.UserID, req.Role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("PUT /me/role - Profile not found: user_id=%d", session.UserID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("PUT /me/role - Failed to change role: user_id=%d, error=%v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /me/role - Role changed: user_id=%d, %s -> %s, changed=%t",
		session.UserID, result.From, result.To, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
