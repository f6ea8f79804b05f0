package update_students

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgEmptyRequest        = "at least one of studentNames, notes is required"
	msgNamesLengthMismatch = "studentNames length must match the current party size"
	msgNotesTooLong        = "notes must not exceed 500 characters"
	msgFlowNotFound        = "flow not found"
	msgFlowCompleted       = "flow is already completed"
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

// Handle PATCH /api/v1/flows/{flowId}/students
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req UpdateStudentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /flows/{flowId}/students - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		h.logger.Warn("PATCH /flows/{flowId}/students - Empty request: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("PATCH /flows/{flowId}/students - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	if req.StudentNames != nil {
		if len(req.StudentNames) != f.Snapshot().PartySize {
			h.logger.Warn("PATCH /flows/{flowId}/students - Names length mismatch: flow_id=%s, names=%d",
				flowID, len(req.StudentNames))
			handlers.RespondBadRequest(w, msgNamesLengthMismatch)
			return
		}
		for i, name := range req.StudentNames {
			if err := f.SetStudentName(i, name); err != nil {
				h.respondFlowError(w, flowID, err)
				return
			}
		}
	}

	if req.Notes != nil {
		if err := f.SetNotes(*req.Notes); err != nil {
			h.respondFlowError(w, flowID, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, flowview.FromSnapshot(f.Snapshot()))
}

func (h *Handler) respondFlowError(w http.ResponseWriter, flowID string, err error) {
	switch {
	case errors.Is(err, flow.ErrInvalidStudentIndex):
		h.logger.Warn("PATCH /flows/{flowId}/students - Names length mismatch: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgNamesLengthMismatch)

	case errors.Is(err, flow.ErrNotesTooLong):
		h.logger.Warn("PATCH /flows/{flowId}/students - Notes too long: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgNotesTooLong)

	case errors.Is(err, flow.ErrFlowCompleted):
		h.logger.Warn("PATCH /flows/{flowId}/students - Flow completed: flow_id=%s", flowID)
		handlers.RespondConflict(w, msgFlowCompleted)

	default:
		h.logger.Error("PATCH /flows/{flowId}/students - Unexpected error: flow_id=%s, error=%v", flowID, err)
		handlers.RespondInternalError(w)
	}
}
