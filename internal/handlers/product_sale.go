package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type ProductSaleHandler struct {
	svc *services.ProductSaleService
}

func NewProductSaleHandler(svc *services.ProductSaleService) *ProductSaleHandler {
	return &ProductSaleHandler{svc: svc}
}

func (h *ProductSaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.List()
	if err != nil {
		writeServiceError(w, "failed_to_list_product_sales", err)
		return
	}
	httpx.JSON(w, http.StatusOK, sales)
}

func (h *ProductSaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.ProductSaleInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	sale, err := h.svc.Create(input)
	if err != nil {
		writeServiceError(w, "failed_to_create_product_sale", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sale)
}

func (h *ProductSaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_product_sale", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
