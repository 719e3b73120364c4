package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder"
	"github.com/fekuna/omnipos-retail-service/internal/purchaseorder/dto"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/go-chi/chi/v5"
)

const notFound = "Purchase order not found"

type PurchaseOrderHandler struct {
	uc     purchaseorder.UseCase
	logger logger.ZapLogger
}

func NewPurchaseOrderHandler(uc purchaseorder.UseCase, log logger.ZapLogger) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *PurchaseOrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.UpdateStatus)
}

func (h *PurchaseOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListPurchaseOrders(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *PurchaseOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreatePurchaseOrderInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	o, err := h.uc.CreatePurchaseOrder(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, o)
}

func (h *PurchaseOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.uc.GetPurchaseOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, o)
}

func (h *PurchaseOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
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
