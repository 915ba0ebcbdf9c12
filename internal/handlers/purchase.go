package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type PurchaseHandler struct {
	svc *services.PurchaseService
}

func NewPurchaseHandler(svc *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{svc: svc}
}

func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.svc.List()
	if err != nil {
		writeServiceError(w, "failed_to_list_purchases", err)
		return
	}
	httpx.JSON(w, http.StatusOK, purchases)
}

func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.LedgerEntryInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	purchase, err := h.svc.Create(input)
	if err != nil {
		writeServiceError(w, "failed_to_create_purchase", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, purchase)
}

func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_purchase", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
