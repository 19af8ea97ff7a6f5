package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/internal/dto"
	"github.com/SHIVENDRA3030/time-table/backend/internal/service"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/response"
)

// TimetableHandler serves schedule reads and manual bookings.
type TimetableHandler struct {
	svc *service.TimetableService
	log *zap.Logger
}

// NewTimetableHandler creates a TimetableHandler.
func NewTimetableHandler(svc *service.TimetableService, log *zap.Logger) *TimetableHandler {
	return &TimetableHandler{svc: svc, log: log}
}

// List handles GET /timetable.
func (h *TimetableHandler) List(c *gin.Context) {
	entries, err := h.svc.ListEntries(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, entries)
}

// ListBySection handles GET /timetable/section/:id.
func (h *TimetableHandler) ListBySection(c *gin.Context) {
	entries, err := h.svc.ListBySection(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, entries)
}

// ListByFaculty handles GET /timetable/faculty/:id.
func (h *TimetableHandler) ListByFaculty(c *gin.Context) {
	entries, err := h.svc.ListByFaculty(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, entries)
}

// ListByRoom handles GET /timetable/room/:id.
func (h *TimetableHandler) ListByRoom(c *gin.Context) {
	entries, err := h.svc.ListByRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, entries)
}

// CreateEntry handles POST /timetable/entries.
func (h *TimetableHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 40001, "invalid request body", err.Error())
		return
	}

	entry, err := h.svc.CreateEntry(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, entry)
}

func (h *TimetableHandler) handleError(c *gin.Context, err error) {
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &conflict):
		response.Conflict(c, 40901, conflict.Reason)
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 40401, "timetable entry not found")
	default:
		h.log.Error("timetable request failed", zap.Error(err))
		response.InternalError(c)
	}
}
