package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder"
	"github.com/fekuna/omnipos-retail-service/internal/onlineorder/dto"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/go-chi/chi/v5"
)

const notFound = "Online order not found"

type OnlineOrderHandler struct {
	uc     onlineorder.UseCase
	logger logger.ZapLogger
}

func NewOnlineOrderHandler(uc onlineorder.UseCase, log logger.ZapLogger) *OnlineOrderHandler {
	return &OnlineOrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OnlineOrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.UpdateStatus)
}

func (h *OnlineOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListOnlineOrders(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *OnlineOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.uc.GetOnlineOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, o)
}

func (h *OnlineOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateStatusInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	o, err := h.uc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, o)
}
