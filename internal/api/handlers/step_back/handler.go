package step_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgAtFirstStep   = "already at the first step"
	msgFlowNotFound  = "flow not found"
	msgFlowCompleted = "flow is already completed"
)

type Handler struct {
	manager FlowManager
	logger  Logger
}

func NewHandler(manager FlowManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/flows/{flowId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("POST /flows/{flowId}/back - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	if err := f.Back(); err != nil {
		switch {
		case errors.Is(err, flow.ErrAtFirstStep):
			h.logger.Warn("POST /flows/{flowId}/back - At first step: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgAtFirstStep)

		case errors.Is(err, flow.ErrFlowCompleted):
			h.logger.Warn("POST /flows/{flowId}/back - Flow completed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgFlowCompleted)

		default:
			h.logger.Error("POST /flows/{flowId}/back - Unexpected error: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, flowview.FromSnapshot(f.Snapshot()))
}
