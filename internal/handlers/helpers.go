package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"factory-backend/internal/httpx"
	"factory-backend/internal/validation"

	"gorm.io/gorm"
)

// idParam reads the numeric id query parameter.
func idParam(r *http.Request) (uint, bool) {
	n, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// writeServiceError maps a service failure onto the response: validation
// violations become 400 with details, missing records 404, anything else is
// logged in full and answered with a short stable code only.
func writeServiceError(w http.ResponseWriter, code string, err error) {
	if verr, ok := validation.AsError(err); ok {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", verr.Violations)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	log.Printf("[ERROR] %s: %v", code, err)
	httpx.JSONError(w, http.StatusInternalServerError, code, nil)
}
