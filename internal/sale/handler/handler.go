package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/fekuna/omnipos-retail-service/internal/sale"
	"github.com/fekuna/omnipos-retail-service/internal/sale/dto"
	"github.com/go-chi/chi/v5"
)

const notFound = "Sale not found"

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SaleHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListSales(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSaleInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	s, err := h.uc.CreateSale(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSale(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteSale(r.Context(), id); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]string{"id": id})
}
