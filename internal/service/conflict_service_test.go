package service

import (
	"context"
	"testing"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

func seedConflictRepo(t *testing.T) *mockTimetableEntryRepo {
	t.Helper()
	repo := newMockTimetableEntryRepo()
	roomID := "room-1"
	err := repo.Create(context.Background(), &model.TimetableEntry{
		SectionID:  "sec-1",
		SubjectID:  "sub-1",
		FacultyID:  "fac-1",
		RoomID:     &roomID,
		Day:        "Monday",
		TimeSlotID: "slot-1",
	})
	if err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return repo
}

func TestConflictCheck_FacultyBusy(t *testing.T) {
	svc := NewConflictService(seedConflictRepo(t))

	reason, err := svc.Check(context.Background(), "sec-2", "fac-1", nil, "Monday", "slot-1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if reason != ReasonFacultyBusy {
		t.Errorf("expected %q, got %q", ReasonFacultyBusy, reason)
	}
}

func TestConflictCheck_RoomOccupied(t *testing.T) {
	svc := NewConflictService(seedConflictRepo(t))
	roomID := "room-1"

	reason, err := svc.Check(context.Background(), "sec-2", "fac-2", &roomID, "Monday", "slot-1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if reason != ReasonRoomOccupied {
		t.Errorf("expected %q, got %q", ReasonRoomOccupied, reason)
	}
}

func TestConflictCheck_SectionBusy(t *testing.T) {
	svc := NewConflictService(seedConflictRepo(t))
	roomID := "room-2"

	reason, err := svc.Check(context.Background(), "sec-1", "fac-2", &roomID, "Monday", "slot-1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if reason != ReasonSectionBusy {
		t.Errorf("expected %q, got %q", ReasonSectionBusy, reason)
	}
}

func TestConflictCheck_FacultyOutranksRoom(t *testing.T) {
	svc := NewConflictService(seedConflictRepo(t))
	roomID := "room-1"

	// Same faculty and same room: the faculty reason wins.
	reason, err := svc.Check(context.Background(), "sec-2", "fac-1", &roomID, "Monday", "slot-1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if reason != ReasonFacultyBusy {
		t.Errorf("expected %q, got %q", ReasonFacultyBusy, reason)
	}
}

func TestConflictCheck_NilRoomSkipsRoomCheck(t *testing.T) {
	svc := NewConflictService(seedConflictRepo(t))

	reason, err := svc.Check(context.Background(), "sec-2", "fac-2", nil, "Monday", "slot-1")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if reason != "" {
		t.Errorf("online booking should pass, got %q", reason)
	}
}

func TestConflictCheck_Clear(t *testing.T) {
	svc := NewConflictService(seedConflictRepo(t))
	roomID := "room-1"

	// Same room, different day and slot.
	for _, probe := range []struct{ day, slot string }{
		{"Tuesday", "slot-1"},
		{"Monday", "slot-2"},
	} {
		reason, err := svc.Check(context.Background(), "sec-1", "fac-1", &roomID, probe.day, probe.slot)
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if reason != "" {
			t.Errorf("%s/%s should be clear, got %q", probe.day, probe.slot, reason)
		}
	}
}
