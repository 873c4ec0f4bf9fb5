package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/productapi/productapi-go/internal/model"
	"github.com/productapi/productapi-go/internal/service"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service *service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{service: svc}
}

// HandleList handles GET /products requests.
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// HandleGet handles GET /product/{id} requests.
func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// HandleCreate handles POST /product requests.
func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateProductResponse{
		Message: "Product added successfully",
		Product: product,
	})
}

// HandleUpdate handles PUT /product/{id} requests.
func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Product updated successfully"})
}

// HandleDelete handles DELETE /product/{id} requests.
func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Product deleted successfully"})
}
