package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/analytics"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
)

type AnalyticsHandler struct {
	uc     analytics.UseCase
	logger logger.ZapLogger
}

func NewAnalyticsHandler(uc analytics.UseCase, log logger.ZapLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.uc.Dashboard(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, err, "")
		return
	}
	response.OK(w, d)
}

func (h *AnalyticsHandler) Report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.uc.Report(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, err, "")
		return
	}
	response.OK(w, rep)
}
