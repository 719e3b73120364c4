package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/fekuna/omnipos-retail-service/internal/supplier"
	"github.com/fekuna/omnipos-retail-service/internal/supplier/dto"
	"github.com/go-chi/chi/v5"
)

const notFound = "Supplier not found"

type SupplierHandler struct {
	uc     supplier.UseCase
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SupplierHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListSuppliers(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateSupplierInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	s, err := h.uc.CreateSupplier(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}

func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.uc.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateSupplierInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	s, err := h.uc.UpdateSupplier(r.Context(), chi.URLParam(r, "id"), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, s)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteSupplier(r.Context(), id); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]string{"id": id})
}
