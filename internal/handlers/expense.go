package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type ExpenseHandler struct {
	svc *services.ExpenseService
}

func NewExpenseHandler(svc *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List()
	if err != nil {
		writeServiceError(w, "failed_to_list_expenses", err)
		return
	}
	httpx.JSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.LedgerEntryInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	expense, err := h.svc.Create(input)
	if err != nil {
		writeServiceError(w, "failed_to_create_expense", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_expense", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
