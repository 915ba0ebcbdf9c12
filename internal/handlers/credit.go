package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type CreditHandler struct {
	svc *services.CreditService
}

func NewCreditHandler(svc *services.CreditService) *CreditHandler {
	return &CreditHandler{svc: svc}
}

// Report: GET /credit – per-client outstanding balances and the grand total
func (h *CreditHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report()
	if err != nil {
		writeServiceError(w, "failed_to_load_credit", err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}
