package create_flow

import (
	"errors"
	"net/http"

	"github.com/avekla/NSK-BookingFlow/internal/api/handlers"
	"github.com/avekla/NSK-BookingFlow/internal/api/handlers/flowview"
	"github.com/avekla/NSK-BookingFlow/internal/flow"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgCourseIDRequired   = "courseId is required"
	msgCourseNotFound     = "course not found"
	msgCourseNotBookable  = "course is not bookable"
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

// Handle POST /api/v1/flows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFlowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.CourseID == "" {
		h.logger.Warn("POST /flows - Missing courseId")
		handlers.RespondBadRequest(w, msgCourseIDRequired)
		return
	}

	f, err := h.manager.Create(r.Context(), req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, flow.ErrCourseNotFound):
			h.logger.Warn("POST /flows - Course not found: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, flow.ErrCourseNotBookable):
			h.logger.Warn("POST /flows - Course not bookable: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotBookable)

		default:
			h.logger.Error("POST /flows - Failed to create flow: course_id=%s, error=%v", req.CourseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flows - Flow created: flow_id=%s, course_id=%s", f.ID(), req.CourseID)
	handlers.RespondJSON(w, http.StatusCreated, flowview.FromSnapshot(f.Snapshot()))
}
