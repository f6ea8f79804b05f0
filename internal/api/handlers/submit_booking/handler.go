package submit_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgFlowNotFound       = "flow not found"
	msgFlowCompleted      = "flow is already completed"
	msgSubmissionInFlight = "a submission is already in progress"
	msgNotOnReview        = "submission is only available on the review step"
	msgDraftInvalid       = "the reservation draft is incomplete"
	msgSubmissionFailed   = "Failed to create booking. Please try again."
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

// Handle POST /api/v1/flows/{flowId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	f, err := h.manager.Get(flowID)
	if err != nil {
		h.logger.Warn("POST /flows/{flowId}/submit - Flow not found: flow_id=%s", flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)
		return
	}

	bookingID, err := f.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrFlowCompleted):
			h.logger.Warn("POST /flows/{flowId}/submit - Flow completed: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgFlowCompleted)

		case errors.Is(err, flow.ErrSubmissionInFlight):
			h.logger.Warn("POST /flows/{flowId}/submit - Submission in flight: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, flow.ErrStepNotReady):
			h.logger.Warn("POST /flows/{flowId}/submit - Not on review step: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgNotOnReview)

		case errors.Is(err, flow.ErrDraftInvalid):
			h.logger.Warn("POST /flows/{flowId}/submit - Draft invalid: flow_id=%s, error=%v", flowID, err)
			handlers.RespondConflict(w, msgDraftInvalid)

		case errors.Is(err, flow.ErrSubmissionRejected):
			h.logger.Warn("POST /flows/{flowId}/submit - Submission rejected: flow_id=%s, error=%v", flowID, err)
			handlers.RespondConflict(w, rejectionMessage(err))

		case errors.Is(err, flow.ErrSubmissionFailed):
			h.logger.Error("POST /flows/{flowId}/submit - Submission failed: flow_id=%s, error=%v", flowID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgSubmissionFailed)

		default:
			h.logger.Error("POST /flows/{flowId}/submit - Unexpected error: flow_id=%s, error=%v", flowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows/{flowId}/submit - Booking created: flow_id=%s, booking_id=%s", flowID, bookingID)
	handlers.RespondJSON(w, http.StatusCreated, flowview.FromSnapshot(f.Snapshot()))
}

// rejectionMessage достаёт текст отказа из обёрнутой ошибки
func rejectionMessage(err error) string {
	msg := err.Error()
	marker := flow.ErrSubmissionRejected.Error() + ": "
	if idx := strings.Index(msg, marker); idx >= 0 {
		if detail := msg[idx+len(marker):]; detail != "" {
			return detail
		}
	}
	return msgSubmissionFailed
}
