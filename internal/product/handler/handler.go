package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/product"
	"github.com/fekuna/omnipos-retail-service/internal/product/dto"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/go-chi/chi/v5"
)

const notFound = "Product not found"

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

// RegisterRoutes mounts the product endpoints, expected under /api/products.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := response.Paging(r)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	page, err := h.uc.ListProducts(r.Context(), &dto.ProductFilters{Cursor: cursor, Limit: limit})
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, page)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dto.CreateProductInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	p, err := h.uc.CreateProduct(r.Context(), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.uc.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dto.UpdateProductInput
	if err := response.Decode(r, &input); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	p, err := h.uc.UpdateProduct(r.Context(), chi.URLParam(r, "id"), &input)
	if err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteProduct(r.Context(), id); err != nil {
		response.Error(w, r, h.logger, err, notFound)
		return
	}
	response.OK(w, map[string]string{"id": id})
}
