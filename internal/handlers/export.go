package handlers

import (
	"net/http"

	"factory-backend/internal/export"
	"factory-backend/internal/httpx"

	"gorm.io/gorm"
)

type ExportHandler struct {
	db  *gorm.DB
	dir string
}

func NewExportHandler(db *gorm.DB, dir string) *ExportHandler {
	return &ExportHandler{db: db, dir: dir}
}

// Client: POST /clients/export?id=N – writes the client's order report
func (h *ExportHandler) Client(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	path, err := export.ClientReport(h.db, h.dir, id)
	if err != nil {
		writeServiceError(w, "failed_to_export_client", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"report": path})
}
