package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/event"
	"github.com/fekuna/omnipos-retail-service/internal/event/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/go-chi/chi/v5"
)

const notFound = "Event not found"

type EventHandler struct {
	uc     event.UseCase
	logger logger.ZapLogger
}

func NewEventHandler(uc event.UseCase, log logger.ZapLogger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *EventHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListEvents(r.Context(), cursor, limit)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateEventInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	e, err := h.uc.CreateEvent(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, e)
}

func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.uc.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, e)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateEventInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	e, err := h.uc.UpdateEvent(r.Context(), chi.URLParam(r, "id"), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, e)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteEvent(r.Context(), id); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]string{"id": id})
}
