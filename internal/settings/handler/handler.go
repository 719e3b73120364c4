package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/fekuna/omnipos-retail-service/internal/settings"
	"github.com/fekuna/omnipos-retail-service/internal/settings/dto"
	"github.com/go-chi/chi/v5"
)

const notFound = "Settings not found"

type SettingsHandler struct {
	uc     settings.UseCase
	logger logger.ZapLogger
}

func NewSettingsHandler(uc settings.UseCase, log logger.ZapLogger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/", h.Update)
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSettings(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateSettingsInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	s, err := h.uc.UpdateSettings(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}
