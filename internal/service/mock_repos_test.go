package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/config"
	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
)

// ── Mock ProgramRepository ──

type mockProgramRepo struct {
	programs map[string]*model.Program // by id
	seq      int
}

func newMockProgramRepo() *mockProgramRepo {
	return &mockProgramRepo{programs: make(map[string]*model.Program)}
}

func (m *mockProgramRepo) Create(_ context.Context, program *model.Program) error {
	for _, p := range m.programs {
		if p.Name == program.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if program.ID == "" {
		m.seq++
		program.ID = fmt.Sprintf("prog-%d", m.seq)
	}
	m.programs[program.ID] = program
	return nil
}

func (m *mockProgramRepo) GetByName(_ context.Context, name string) (*model.Program, error) {
	for _, p := range m.programs {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgramRepo) List(_ context.Context) ([]model.Program, error) {
	var result []model.Program
	for _, p := range m.programs {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProgramRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.programs)), nil
}

func (m *mockProgramRepo) DeleteAll(_ context.Context) error {
	m.programs = make(map[string]*model.Program)
	return nil
}

// ── Mock SectionRepository ──

type mockSectionRepo struct {
	sections map[string]*model.Section
	seq      int
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{sections: make(map[string]*model.Section)}
}

func (m *mockSectionRepo) Create(_ context.Context, section *model.Section) error {
	for _, s := range m.sections {
		if s.Name == section.Name && s.ProgramID == section.ProgramID {
			return gorm.ErrDuplicatedKey
		}
	}
	if section.ID == "" {
		m.seq++
		section.ID = fmt.Sprintf("sec-%d", m.seq)
	}
	m.sections[section.ID] = section
	return nil
}

func (m *mockSectionRepo) GetByNameAndProgram(_ context.Context, name, programID string) (*model.Section, error) {
	for _, s := range m.sections {
		if s.Name == name && s.ProgramID == programID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSectionRepo) List(_ context.Context) ([]model.Section, error) {
	var result []model.Section
	for _, s := range m.sections {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSectionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.sections)), nil
}

func (m *mockSectionRepo) DeleteAll(_ context.Context) error {
	m.sections = make(map[string]*model.Section)
	return nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject // by code
	seq      int
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if _, ok := m.subjects[subject.Code]; ok {
		return gorm.ErrDuplicatedKey
	}
	if subject.ID == "" {
		m.seq++
		subject.ID = fmt.Sprintf("sub-%d", m.seq)
	}
	m.subjects[subject.Code] = subject
	return nil
}

func (m *mockSubjectRepo) GetByCode(_ context.Context, code string) (*model.Subject, error) {
	if s, ok := m.subjects[code]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context) ([]model.Subject, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSubjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.subjects)), nil
}

func (m *mockSubjectRepo) DeleteAll(_ context.Context) error {
	m.subjects = make(map[string]*model.Subject)
	return nil
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	faculty map[string]*model.Faculty // by email
	seq     int
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{faculty: make(map[string]*model.Faculty)}
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	if _, ok := m.faculty[faculty.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if faculty.ID == "" {
		m.seq++
		faculty.ID = fmt.Sprintf("fac-%d", m.seq)
	}
	m.faculty[faculty.Email] = faculty
	return nil
}

func (m *mockFacultyRepo) GetByName(_ context.Context, name string) (*model.Faculty, error) {
	for _, f := range m.faculty {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) GetByEmail(_ context.Context, email string) (*model.Faculty, error) {
	if f, ok := m.faculty[email]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(_ context.Context) ([]model.Faculty, error) {
	var result []model.Faculty
	for _, f := range m.faculty {
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockFacultyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.faculty)), nil
}

func (m *mockFacultyRepo) DeleteAll(_ context.Context) error {
	m.faculty = make(map[string]*model.Faculty)
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room // by room number
	seq   int
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if _, ok := m.rooms[room.RoomNumber]; ok {
		return gorm.ErrDuplicatedKey
	}
	if room.ID == "" {
		m.seq++
		room.ID = fmt.Sprintf("room-%d", m.seq)
	}
	m.rooms[room.RoomNumber] = room
	return nil
}

func (m *mockRoomRepo) GetByNumber(_ context.Context, roomNumber string) (*model.Room, error) {
	if r, ok := m.rooms[roomNumber]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.rooms)), nil
}

func (m *mockRoomRepo) DeleteAll(_ context.Context) error {
	m.rooms = make(map[string]*model.Room)
	return nil
}

// ── Mock TimeSlotRepository ──

type mockTimeSlotRepo struct {
	slots map[string]*model.TimeSlot // by start|end
	seq   int
}

func newMockTimeSlotRepo() *mockTimeSlotRepo {
	return &mockTimeSlotRepo{slots: make(map[string]*model.TimeSlot)}
}

func (m *mockTimeSlotRepo) Create(_ context.Context, slot *model.TimeSlot) error {
	key := slot.StartTime + "|" + slot.EndTime
	if _, ok := m.slots[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	if slot.ID == "" {
		m.seq++
		slot.ID = fmt.Sprintf("slot-%d", m.seq)
	}
	m.slots[key] = slot
	return nil
}

func (m *mockTimeSlotRepo) GetByRange(_ context.Context, startTime, endTime string) (*model.TimeSlot, error) {
	if s, ok := m.slots[startTime+"|"+endTime]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeSlotRepo) List(_ context.Context) ([]model.TimeSlot, error) {
	var result []model.TimeSlot
	for _, s := range m.slots {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockTimeSlotRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.slots)), nil
}

func (m *mockTimeSlotRepo) DeleteAll(_ context.Context) error {
	m.slots = make(map[string]*model.TimeSlot)
	return nil
}

// ── Mock TimetableEntryRepository ──

type mockTimetableEntryRepo struct {
	entries map[string]*model.TimetableEntry // by id
	seq     int
}

func newMockTimetableEntryRepo() *mockTimetableEntryRepo {
	return &mockTimetableEntryRepo{entries: make(map[string]*model.TimetableEntry)}
}

func entryKey(sectionID, day, timeSlotID string) string {
	return strings.Join([]string{sectionID, day, timeSlotID}, "|")
}

func (m *mockTimetableEntryRepo) Create(_ context.Context, entry *model.TimetableEntry) error {
	for _, e := range m.entries {
		if entryKey(e.SectionID, e.Day, e.TimeSlotID) == entryKey(entry.SectionID, entry.Day, entry.TimeSlotID) {
			return gorm.ErrDuplicatedKey
		}
	}
	if entry.ID == "" {
		m.seq++
		entry.ID = fmt.Sprintf("entry-%d", m.seq)
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockTimetableEntryRepo) GetByID(_ context.Context, id string) (*model.TimetableEntry, error) {
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableEntryRepo) GetBySectionDaySlot(_ context.Context, sectionID, day, timeSlotID string) (*model.TimetableEntry, error) {
	for _, e := range m.entries {
		if e.SectionID == sectionID && e.Day == day && e.TimeSlotID == timeSlotID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableEntryRepo) List(_ context.Context) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockTimetableEntryRepo) ListBySection(_ context.Context, sectionID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.SectionID == sectionID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockTimetableEntryRepo) ListByFaculty(_ context.Context, facultyID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.FacultyID == facultyID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockTimetableEntryRepo) ListByRoom(_ context.Context, roomID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.RoomID != nil && *e.RoomID == roomID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockTimetableEntryRepo) UpdateRoom(_ context.Context, id, roomID string) error {
	e, ok := m.entries[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.RoomID = &roomID
	return nil
}

func (m *mockTimetableEntryRepo) ExistsFacultyAt(_ context.Context, facultyID, day, timeSlotID string) (bool, error) {
	for _, e := range m.entries {
		if e.FacultyID == facultyID && e.Day == day && e.TimeSlotID == timeSlotID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTimetableEntryRepo) ExistsRoomAt(_ context.Context, roomID, day, timeSlotID string) (bool, error) {
	for _, e := range m.entries {
		if e.RoomID != nil && *e.RoomID == roomID && e.Day == day && e.TimeSlotID == timeSlotID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTimetableEntryRepo) ExistsSectionAt(_ context.Context, sectionID, day, timeSlotID string) (bool, error) {
	for _, e := range m.entries {
		if e.SectionID == sectionID && e.Day == day && e.TimeSlotID == timeSlotID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTimetableEntryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.entries)), nil
}

func (m *mockTimetableEntryRepo) DeleteAll(_ context.Context) error {
	m.entries = make(map[string]*model.TimetableEntry)
	return nil
}

// ── test wiring helpers ──

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Program:        newMockProgramRepo(),
		Section:        newMockSectionRepo(),
		Subject:        newMockSubjectRepo(),
		Faculty:        newMockFacultyRepo(),
		Room:           newMockRoomRepo(),
		TimeSlot:       newMockTimeSlotRepo(),
		TimetableEntry: newMockTimetableEntryRepo(),
	}
}

func testImportConfig() config.ImportConfig {
	return config.ImportConfig{
		ProgramName:       "B.Tech",
		ProgramDepartment: "Engineering",
		FacultyPassword:   "ChangeMe@123",
		DefaultCredits:    3,
		DefaultCapacity:   60,
		AllowReset:        true,
	}
}
