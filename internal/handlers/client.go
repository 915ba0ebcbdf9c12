package handlers

import (
	"net/http"

	"factory-backend/internal/httpx"
	"factory-backend/internal/services"
)

type ClientHandler struct {
	svc *services.ClientService
}

func NewClientHandler(svc *services.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// List: GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List()
	if err != nil {
		writeServiceError(w, "failed_to_list_clients", err)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

// Get: GET /clients/view?id=N – one client with its orders, newest first
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	client, err := h.svc.Get(id)
	if err != nil {
		writeServiceError(w, "failed_to_load_client", err)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

// Create: POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := httpx.Decode(r, &input); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_body", nil)
		return
	}
	client, err := h.svc.Create(input.Name)
	if err != nil {
		writeServiceError(w, "failed_to_create_client", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

// Delete: POST /clients/delete?id=N – orders go with the client via the cascade
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, "failed_to_delete_client", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}
