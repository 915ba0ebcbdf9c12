package handlers

import (
	"log"
	"net/http"

	"factory-backend/internal/backup"
	"factory-backend/internal/httpx"
)

type BackupHandler struct {
	mgr *backup.Manager
}

func NewBackupHandler(mgr *backup.Manager) *BackupHandler {
	return &BackupHandler{mgr: mgr}
}

// Trigger: POST /backup – one dump attempt, pruning only after success. The
// handler waits for the dump to finish; nothing stops a second trigger while
// one is in flight.
func (h *BackupHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	path, err := h.mgr.Run()
	if err != nil {
		log.Printf("[ERROR] backup failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "backup_failed", err.Error())
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"backup": path})
}
