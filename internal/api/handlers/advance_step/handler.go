package advance_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgStepNotReady  = "the current step is not complete"
	msgNoNextStep    = "already at the last step"
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

// Handle POST /api/v1/flows/{flowId}/advance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("POST /flows/{flowId}/advance - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	if err := f.Advance(); err != nil {
		switch {
		case errors.Is(err, flow.ErrStepNotReady):
			h.logger.Warn("POST /flows/{flowId}/advance - Step not ready: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgStepNotReady)

		case errors.Is(err, flow.ErrNoNextStep):
			h.logger.Warn("POST /flows/{flowId}/advance - No next step: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgNoNextStep)

		case errors.Is(err, flow.ErrFlowCompleted):
			h.logger.Warn("POST /flows/{flowId}/advance - Flow completed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgFlowCompleted)

		default:
			h.logger.Error("POST /flows/{flowId}/advance - Unexpected error: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, flowview.FromSnapshot(f.Snapshot()))
}
