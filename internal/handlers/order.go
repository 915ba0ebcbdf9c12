package handlers

import (
	"net/http"
	"strconv"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type OrderHandler struct {
	svc *services.OrderService
}

func NewOrderHandler(svc *services.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List: GET /orders?client_id=N – newest first
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.ParseUint(r.URL.Query().Get("client_id"), 10, 32)
	if err != nil || clientID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
		return
	}
	orders, err := h.svc.ListForClient(uint(clientID))
	if err != nil {
		writeServiceError(w, "failed_to_list_orders", err)
		return
	}
	httpx.JSON(w, http.StatusOK, orders)
}

// Create: POST /orders – body carries client_id and the order fields
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ClientID uint `json:"client_id"`
		services.OrderInput
	}
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	if input.ClientID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_client_id", nil)
		return
	}
	order, err := h.svc.Create(input.ClientID, input.OrderInput)
	if err != nil {
		writeServiceError(w, "failed_to_create_order", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, order)
}

// Update: POST /orders/update?id=N
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var input services.OrderInput
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	order, err := h.svc.Update(id, input)
	if err != nil {
		writeServiceError(w, "failed_to_update_order", err)
		return
	}
	httpx.JSON(w, http.StatusOK, order)
}

// Delete: POST /orders/delete?id=N
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_order", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
