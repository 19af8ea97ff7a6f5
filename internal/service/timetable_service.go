package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/dto"
	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
)

// ErrEntryNotFound means no timetable entry matches the given id.
var ErrEntryNotFound = errors.New("timetable entry not found")

// TimetableService serves schedule reads and manual bookings.
type TimetableService struct {
	repo     *repository.Repository
	conflict *ConflictService
	log      *zap.Logger
}

// NewTimetableService creates a TimetableService.
func NewTimetableService(repo *repository.Repository, conflict *ConflictService, log *zap.Logger) *TimetableService {
	return &TimetableService{repo: repo, conflict: conflict, log: log}
}

// ListEntries returns every stored entry with its relations loaded.
func (s *TimetableService) ListEntries(ctx context.Context) ([]model.TimetableEntry, error) {
	return s.repo.TimetableEntry.List(ctx)
}

// ListBySection returns a section's schedule.
func (s *TimetableService) ListBySection(ctx context.Context, sectionID string) ([]model.TimetableEntry, error) {
	return s.repo.TimetableEntry.ListBySection(ctx, sectionID)
}

// ListByFaculty returns a faculty member's schedule.
func (s *TimetableService) ListByFaculty(ctx context.Context, facultyID string) ([]model.TimetableEntry, error) {
	return s.repo.TimetableEntry.ListByFaculty(ctx, facultyID)
}

// ListByRoom returns a room's occupancy schedule.
func (s *TimetableService) ListByRoom(ctx context.Context, roomID string) ([]model.TimetableEntry, error) {
	return s.repo.TimetableEntry.ListByRoom(ctx, roomID)
}

// GetEntry returns one entry by id.
func (s *TimetableService) GetEntry(ctx context.Context, id string) (*model.TimetableEntry, error) {
	entry, err := s.repo.TimetableEntry.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	return entry, err
}

// CreateEntry books one class occurrence after clearing the conflict check.
// A refused booking returns a *ConflictError matching ErrScheduleConflict.
func (s *TimetableService) CreateEntry(ctx context.Context, req *dto.CreateEntryRequest) (*model.TimetableEntry, error) {
	reason, err := s.conflict.Check(ctx, req.SectionID, req.FacultyID, req.RoomID, req.Day, req.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if reason != "" {
		return nil, &ConflictError{Reason: reason}
	}

	entry := &model.TimetableEntry{
		SectionID:  req.SectionID,
		SubjectID:  req.SubjectID,
		FacultyID:  req.FacultyID,
		RoomID:     req.RoomID,
		Day:        req.Day,
		TimeSlotID: req.TimeSlotID,
	}
	if err := s.repo.TimetableEntry.Create(ctx, entry); err != nil {
		// The section check and the unique constraint guard the same key;
		// a duplicate here means a concurrent booking won.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Reason: ReasonSectionBusy}
		}
		return nil, err
	}

	s.log.Info("timetable entry booked",
		zap.String("entry_id", entry.ID),
		zap.String("section_id", entry.SectionID),
		zap.String("day", entry.Day),
	)

	return s.GetEntry(ctx, entry.ID)
}
