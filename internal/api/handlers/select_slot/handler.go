package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
	msgStaleSlot          = "the selected time slot is no longer available"
	msgWrongStep          = "slot selection is only available on the time slot step"
	msgFlowNotFound       = "flow not found"
	msgFlowCompleted      = "flow is already completed"
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

// Handle POST /api/v1/flows/{flowId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows/{flowId}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := req.ToTimeSlot()
	if err != nil {
		h.logger.Warn("POST /flows/{flowId}/slot - Invalid time format: flow_id=%s, start=%s, end=%s",
			flowID, req.StartTime, req.EndTime)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("POST /flows/{flowId}/slot - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	if err := f.SelectSlot(slot); err != nil {
		switch {
		case errors.Is(err, flow.ErrStaleSlot):
			h.logger.Warn("POST /flows/{flowId}/slot - Stale slot: flow_id=%s, slot=%s-%s",
				flowID, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgStaleSlot)

		case errors.Is(err, flow.ErrStepNotReady):
			h.logger.Warn("POST /flows/{flowId}/slot - Wrong step: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, flow.ErrFlowCompleted):
			h.logger.Warn("POST /flows/{flowId}/slot - Flow completed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgFlowCompleted)

		default:
			h.logger.Error("POST /flows/{flowId}/slot - Unexpected error: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/slot - Slot selected: flow_id=%s, slot=%s-%s",
		flowID, req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusOK, flowview.FromSnapshot(f.Snapshot()))
}
