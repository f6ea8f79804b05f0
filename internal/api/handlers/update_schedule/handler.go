package update_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/domain"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmptyRequest       = "at least one of bookingDate, location, partySize is required"
	msgInvalidDateFormat  = "invalid booking date format, expected YYYY-MM-DD"
	msgInvalidDate        = "booking date must be between tomorrow and 30 days from now"
	msgInvalidLocation    = "location is not offered for this course"
	msgInvalidPartySize   = "party size is out of range for this course"
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

// Handle PATCH /api/v1/flows/{flowId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Empty request: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgEmptyRequest)
		return
	}

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	if req.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.BookingDate)
		if err != nil {
			h.logger.Warn("PATCH /flows/{flowId}/schedule - Invalid date format: flow_id=%s, date=%s", flowID, *req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		if err := f.SetDate(date); err != nil {
			h.respondFlowError(w, flowID, err)
			return
		}
	}

	if req.Location != nil {
		if err := f.SetLocation(*req.Location); err != nil {
			h.respondFlowError(w, flowID, err)
			return
		}
	}

	if req.PartySize != nil {
		if err := f.SetPartySize(*req.PartySize); err != nil {
			h.respondFlowError(w, flowID, err)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, flowview.FromSnapshot(f.Snapshot()))
}

func (h *Handler) respondFlowError(w http.ResponseWriter, flowID string, err error) {
	switch {
	case errors.Is(err, flow.ErrInvalidDate):
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Invalid date: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, flow.ErrInvalidLocation):
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Invalid location: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgInvalidLocation)

	case errors.Is(err, flow.ErrInvalidPartySize):
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Invalid party size: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgInvalidPartySize)

	case errors.Is(err, flow.ErrFlowCompleted):
		h.logger.Warn("PATCH /flows/{flowId}/schedule - Flow completed: flow_id=%s", flowID)
		handlers.RespondConflict(w, msgFlowCompleted)

	default:
		h.logger.Error("PATCH /flows/{flowId}/schedule - Unexpected error: flow_id=%s, error=%v", flowID, err)
		handlers.RespondInternalError(w)
	}
}
