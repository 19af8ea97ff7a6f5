package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/internal/dto"
	"github.com/SHIVENDRA3030/time-table/backend/internal/service"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/response"
)

// CatalogHandler serves the reference entities: programs, sections, subjects,
// faculty, rooms and time slots.
type CatalogHandler struct {
	svc *service.CatalogService
	log *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc *service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

// ListPrograms handles GET /programs.
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	programs, err := h.svc.ListPrograms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, programs)
}

// CreateProgram handles POST /programs.
func (h *CatalogHandler) CreateProgram(c *gin.Context) {
	var req dto.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 40001, "invalid request body", err.Error())
		return
	}

	program, err := h.svc.CreateProgram(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, program)
}

// ListSections handles GET /sections.
func (h *CatalogHandler) ListSections(c *gin.Context) {
	sections, err := h.svc.ListSections(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, sections)
}

// CreateSection handles POST /sections.
func (h *CatalogHandler) CreateSection(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 40001, "invalid request body", err.Error())
		return
	}

	section, err := h.svc.CreateSection(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, section)
}

// ListSubjects handles GET /subjects.
func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.svc.ListSubjects(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, subjects)
}

// CreateSubject handles POST /subjects.
func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 40001, "invalid request body", err.Error())
		return
	}

	subject, err := h.svc.CreateSubject(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, subject)
}

// ListFaculty handles GET /faculty.
func (h *CatalogHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.svc.ListFaculty(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, faculty)
}

// CreateFaculty handles POST /faculty.
func (h *CatalogHandler) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 40001, "invalid request body", err.Error())
		return
	}

	faculty, err := h.svc.CreateFaculty(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, faculty)
}

// ListRooms handles GET /rooms.
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.svc.ListRooms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, rooms)
}

// CreateRoom handles POST /rooms.
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 40001, "invalid request body", err.Error())
		return
	}

	room, err := h.svc.CreateRoom(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, room)
}

// ListTimeSlots handles GET /time-slots.
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.svc.ListTimeSlots(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.OK(c, slots)
}

func (h *CatalogHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramExists):
		response.Conflict(c, 40902, "program already exists")
	case errors.Is(err, service.ErrSectionExists):
		response.Conflict(c, 40903, "section already exists in this program")
	case errors.Is(err, service.ErrSubjectExists):
		response.Conflict(c, 40904, "subject already exists")
	case errors.Is(err, service.ErrFacultyExists):
		response.Conflict(c, 40905, "faculty already exists")
	case errors.Is(err, service.ErrRoomExists):
		response.Conflict(c, 40906, "room already exists")
	default:
		h.log.Error("catalog request failed", zap.Error(err))
		response.InternalError(c)
	}
}
