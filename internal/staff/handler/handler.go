package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/fekuna/omnipos-retail-service/internal/staff"
	"github.com/fekuna/omnipos-retail-service/internal/staff/dto"
	"github.com/go-chi/chi/v5"
)

const notFound = "Staff member not found"

type StaffHandler struct {
	uc     staff.UseCase
	logger logger.ZapLogger
}

func NewStaffHandler(uc staff.UseCase, log logger.ZapLogger) *StaffHandler {
	return &StaffHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Patch("/{id}/status", h.ToggleStatus)
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListStaff(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateStaffInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	m, err := h.uc.CreateStaffMember(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, m)
}

func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.uc.GetStaffMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, m)
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateStaffInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	m, err := h.uc.UpdateStaffMember(r.Context(), chi.URLParam(r, "id"), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, m)
}

func (h *StaffHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	m, err := h.uc.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, m)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteStaffMember(r.Context(), id); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]string{"id": id})
}
