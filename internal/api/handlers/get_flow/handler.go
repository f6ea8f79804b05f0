package get_flow

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
)

const msgFlowNotFound = "flow not found"

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

// Handle GET /api/v1/flows/{flowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("GET /flows/{flowId} - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, flowview.FromSnapshot(f.Snapshot()))
}
