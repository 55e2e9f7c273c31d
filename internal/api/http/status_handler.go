package http

import (
	"net/http"

	"churchplus-backend/internal/service"
)

type StatusHandler struct {
	statusSvc service.StatusService
}

func NewStatusHandler(statusSvc service.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.statusSvc.GetStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
