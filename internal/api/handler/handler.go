package handler

import (
	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/internal/service"
)

// Handler aggregates every HTTP handler.
type Handler struct {
	Upload    *UploadHandler
	Timetable *TimetableHandler
	Catalog   *CatalogHandler
}

// NewHandler wires the handlers onto the service layer.
func NewHandler(svc *service.Service, log *zap.Logger) *Handler {
	return &Handler{
		Upload:    NewUploadHandler(svc.Import, log),
		Timetable: NewTimetableHandler(svc.Timetable, log),
		Catalog:   NewCatalogHandler(svc.Catalog, log),
	}
}
