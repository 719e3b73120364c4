package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/customer"
	"github.com/fekuna/omnipos-retail-service/internal/customer/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/go-chi/chi/v5"
)

const notFound = "Customer not found"

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListCustomers(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateCustomerInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	cust, err := h.uc.CreateCustomer(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, cust)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	cust, err := h.uc.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, cust)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateCustomerInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	cust, err := h.uc.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, cust)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteCustomer(r.Context(), id); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]string{"id": id})
}
