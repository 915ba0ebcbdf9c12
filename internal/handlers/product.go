package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type ProductHandler struct {
	svc *services.ProductService
}

func NewProductHandler(svc *services.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List: GET /products – by name, steps included
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List()
	if err != nil {
		writeServiceError(w, "failed_to_list_products", err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// Create: POST /products – name plus manufacturing steps
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	product, err := h.svc.Create(input)
	if err != nil {
		writeServiceError(w, "failed_to_create_product", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

// Delete: POST /products/delete?id=N
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_product", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
