package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	Program        ProgramRepository
	Section        SectionRepository
	Subject        SubjectRepository
	Faculty        FacultyRepository
	Room           RoomRepository
	TimeSlot       TimeSlotRepository
	TimetableEntry TimetableEntryRepository
}

// NewRepository wires the gorm-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Program:        NewProgramRepo(db),
		Section:        NewSectionRepo(db),
		Subject:        NewSubjectRepo(db),
		Faculty:        NewFacultyRepo(db),
		Room:           NewRoomRepo(db),
		TimeSlot:       NewTimeSlotRepo(db),
		TimetableEntry: NewTimetableEntryRepo(db),
	}
}
