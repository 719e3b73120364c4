package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/inventory"
	"github.com/fekuna/omnipos-retail-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/go-chi/chi/v5"
)

const notFound = "Product not found"

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes mounts the stock endpoints, expected under /api/inventory.
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/low-stock", h.ListLowStock)
	r.Post("/adjust", h.Adjust)
}

func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.uc.ListLowStock(r.Context())
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]any{"items": items})
}

func (h *InventoryHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var input dto.AdjustInventoryInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	p, err := h.uc.AdjustInventory(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, p)
}
