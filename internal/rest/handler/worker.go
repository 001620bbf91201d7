package handler

import (
	"net/http"

	"github.com/brkuhgk/Nestara/internal/worker/core"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// WorkerHandler exposes worker heartbeat status for operational visibility.
type WorkerHandler struct {
	monitor *core.Monitor
	logger  *zap.Logger
}

// NewWorkerHandler creates a new worker status handler.
func NewWorkerHandler(monitor *core.Monitor, logger *zap.Logger) *WorkerHandler {
	return &WorkerHandler{
		monitor: monitor,
		logger:  logger,
	}
}

// GetWorkerStatuses lists every worker's last reported status.
func (h *WorkerHandler) GetWorkerStatuses(w http.ResponseWriter, req bunrouter.Request) error {
	statuses, err := h.monitor.GetAllStatuses(req.Context())
	if err != nil {
		return writeError(w, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, statuses)
}
