package service

import (
	"context"
	"errors"

	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
)

// Conflict reason messages, in check order. Faculty double-booking outranks
// room occupancy, which outranks a section clash.
const (
	ReasonFacultyBusy  = "Faculty is already booked at this time."
	ReasonRoomOccupied = "Room is already occupied at this time."
	ReasonSectionBusy  = "Section already has a class at this time."
)

// ErrScheduleConflict marks a booking refused by the conflict check. Match it
// with errors.Is; the concrete *ConflictError carries the reason.
var ErrScheduleConflict = errors.New("schedule conflict")

// ConflictError reports why a booking was refused.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// Is lets errors.Is(err, ErrScheduleConflict) match any conflict.
func (e *ConflictError) Is(target error) bool { return target == ErrScheduleConflict }

// ConflictService answers whether a proposed booking collides with stored
// entries. Equality of (day, time slot) is the collision predicate; slots are
// canonical rows, so overlapping but distinct ranges never collide.
type ConflictService struct {
	entries repository.TimetableEntryRepository
}

// NewConflictService creates a ConflictService.
func NewConflictService(entries repository.TimetableEntryRepository) *ConflictService {
	return &ConflictService{entries: entries}
}

// Check returns the first conflict a proposed booking would cause, or "" when
// the booking is clear. roomID may be nil for online sessions; only the
// faculty and section checks apply then.
func (s *ConflictService) Check(ctx context.Context, sectionID, facultyID string, roomID *string, day, timeSlotID string) (string, error) {
	busy, err := s.entries.ExistsFacultyAt(ctx, facultyID, day, timeSlotID)
	if err != nil {
		return "", err
	}
	if busy {
		return ReasonFacultyBusy, nil
	}

	if roomID != nil {
		occupied, err := s.entries.ExistsRoomAt(ctx, *roomID, day, timeSlotID)
		if err != nil {
			return "", err
		}
		if occupied {
			return ReasonRoomOccupied, nil
		}
	}

	taken, err := s.entries.ExistsSectionAt(ctx, sectionID, day, timeSlotID)
	if err != nil {
		return "", err
	}
	if taken {
		return ReasonSectionBusy, nil
	}

	return "", nil
}
