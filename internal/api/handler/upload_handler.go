package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/internal/service"
	"github.com/SHIVENDRA3030/time-table/backend/pkg/response"
)

// maxUploadBytes bounds the workbook size accepted for import.
const maxUploadBytes = 20 << 20

// UploadHandler serves workbook import and reset endpoints.
type UploadHandler struct {
	importSvc *service.ImportService
	log       *zap.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(importSvc *service.ImportService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{importSvc: importSvc, log: log}
}

// Upload handles POST /upload. The workbook travels in the multipart "file"
// field; dry_run=true parses and previews without writing.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 40001, "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, 40002, "file exceeds the 20MB upload limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("open uploaded file", zap.Error(err))
		response.InternalError(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.log.Error("read uploaded file", zap.Error(err))
		response.InternalError(c)
		return
	}

	dryRun, _ := strconv.ParseBool(c.DefaultQuery("dry_run", "false"))
	if dryRun {
		preview, err := h.importSvc.Preview(c.Request.Context(), data)
		if err != nil {
			h.handleImportError(c, err)
			return
		}
		if preview.TotalParsed == 0 {
			response.BadRequest(c, 40004, "no timetable entries found in workbook")
			return
		}
		response.OK(c, preview)
		return
	}

	result, err := h.importSvc.Import(c.Request.Context(), data)
	if err != nil {
		h.handleImportError(c, err)
		return
	}
	if result.TotalParsed == 0 {
		response.BadRequest(c, 40004, "no timetable entries found in workbook")
		return
	}
	response.OK(c, result)
}

// Reset handles DELETE /upload/database.
func (h *UploadHandler) Reset(c *gin.Context) {
	result, err := h.importSvc.Reset(c.Request.Context())
	if err != nil {
		h.handleImportError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *UploadHandler) handleImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkbookInvalid):
		response.ErrorWithDetails(c, 400, 40003, "file is not a readable xlsx workbook", err.Error())
	case errors.Is(err, service.ErrResetDisabled):
		response.Forbidden(c, 40302, "database reset is disabled")
	default:
		h.log.Error("import failed", zap.Error(err))
		response.InternalError(c)
	}
}
