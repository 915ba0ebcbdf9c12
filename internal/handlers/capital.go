package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type CapitalHandler struct {
	svc *services.CapitalService
}

func NewCapitalHandler(svc *services.CapitalService) *CapitalHandler {
	return &CapitalHandler{svc: svc}
}

// List: GET /capital – derived balance plus the full history, newest first
func (h *CapitalHandler) List(w http.ResponseWriter, r *http.Request) {
	balance, err := h.svc.Balance()
	if err != nil {
		writeServiceError(w, "failed_to_compute_balance", err)
		return
	}
	entries, err := h.svc.List()
	if err != nil {
		writeServiceError(w, "failed_to_list_capital", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"balance": balance, "entries": entries})
}

// Create: POST /capital
func (h *CapitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CapitalInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	entry, err := h.svc.Create(input)
	if err != nil {
		writeServiceError(w, "failed_to_create_capital_entry", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

// Delete: POST /capital/delete?id=N
func (h *CapitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_capital_entry", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
