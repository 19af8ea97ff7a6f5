package service

import (
	"go.uber.org/zap"

	"github.com/SHIVENDRA3030/time-table/backend/config"
	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
)

// Service aggregates every application service.
type Service struct {
	Import    *ImportService
	Conflict  *ConflictService
	Timetable *TimetableService
	Catalog   *CatalogService
}

// NewService wires the services onto the repository layer.
func NewService(repo *repository.Repository, cfg *config.Config, log *zap.Logger) *Service {
	conflict := NewConflictService(repo.TimetableEntry)
	return &Service{
		Import:    NewImportService(repo, cfg.Import, log),
		Conflict:  conflict,
		Timetable: NewTimetableService(repo, conflict, log),
		Catalog:   NewCatalogService(repo, cfg.Import),
	}
}
