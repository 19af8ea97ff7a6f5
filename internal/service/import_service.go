package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/config"
	"github.com/SHIVENDRA3030/time-table/backend/internal/dto"
	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
)

var (
	// ErrWorkbookInvalid means the uploaded payload is not a readable workbook.
	ErrWorkbookInvalid = errors.New("workbook is not a readable xlsx file")
	// ErrResetDisabled means database resets are switched off in configuration.
	ErrResetDisabled = errors.New("database reset is disabled")
)

const (
	// facultyEmailDomain forms the derived address of imported faculty.
	facultyEmailDomain = "college.edu"
	// maxImportErrors caps the per-entry error list of one import run.
	maxImportErrors = 50
	// maxPreviewSample caps the entry sample returned by dry runs.
	maxPreviewSample = 30
)

// ImportService turns uploaded timetable workbooks into store records.
// Imports are idempotent: re-uploading the same workbook inserts nothing and
// reports every entry as a duplicate.
type ImportService struct {
	repo *repository.Repository
	cfg  config.ImportConfig
	log  *zap.Logger
}

// NewImportService creates an ImportService.
func NewImportService(repo *repository.Repository, cfg config.ImportConfig, log *zap.Logger) *ImportService {
	return &ImportService{repo: repo, cfg: cfg, log: log}
}

// importRun holds the per-run resolution caches. Caches never outlive a run;
// concurrent imports and out-of-band writes stay visible.
type importRun struct {
	programID    string
	sections     map[string]string // lower(name) -> id
	subjects     map[string]string // code -> id
	faculty      map[string]string // lower(name) -> id
	rooms        map[string]string // room number -> id
	slots        map[string]string // start|end -> id
	passwordHash string
}

func newImportRun() *importRun {
	return &importRun{
		sections: make(map[string]string),
		subjects: make(map[string]string),
		faculty:  make(map[string]string),
		rooms:    make(map[string]string),
		slots:    make(map[string]string),
	}
}

// Preview parses a workbook and reports what a commit would import, without
// writing anything.
func (s *ImportService) Preview(ctx context.Context, data []byte) (*dto.ImportPreviewResponse, error) {
	entries, err := ParseWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookInvalid, err)
	}

	sample := make([]dto.ParsedEntryPreview, 0, maxPreviewSample)
	for _, e := range entries {
		if len(sample) == maxPreviewSample {
			break
		}
		sample = append(sample, previewOf(e))
	}

	return &dto.ImportPreviewResponse{
		TotalParsed: len(entries),
		Quality:     qualityOf(entries),
		Sample:      sample,
	}, nil
}

// Import parses a workbook and commits its entries to the store. Entities
// referenced by an entry are resolved by natural key and created on demand;
// entries colliding with the (section, day, slot) constraint count as
// duplicates and may still backfill a missing room on the stored row.
func (s *ImportService) Import(ctx context.Context, data []byte) (*dto.ImportResultResponse, error) {
	entries, err := ParseWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookInvalid, err)
	}

	result := &dto.ImportResultResponse{
		TotalParsed: len(entries),
		Quality:     qualityOf(entries),
	}
	if len(entries) == 0 {
		return result, nil
	}

	run := newImportRun()
	if err := s.resolveProgram(ctx, run); err != nil {
		return nil, fmt.Errorf("resolve program %q: %w", s.cfg.ProgramName, err)
	}

	for _, entry := range entries {
		if err := s.importEntry(ctx, run, entry, result); err != nil {
			result.Failed++
			if len(result.Errors) < maxImportErrors {
				result.Errors = append(result.Errors,
					fmt.Sprintf("%s | %s | %s: %v", entry.Section, entry.Day, entry.TimeSlot, err))
			}
		}
	}

	s.log.Info("timetable import finished",
		zap.Int("total_parsed", result.TotalParsed),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// importEntry resolves one parsed entry and inserts it. The returned error is
// entry-scoped; callers count it as a failure and keep going.
func (s *ImportService) importEntry(ctx context.Context, run *importRun, entry ParsedEntry, result *dto.ImportResultResponse) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	sectionID, err := s.resolveSection(ctx, run, entry.Section)
	if err != nil {
		return fmt.Errorf("section: %w", err)
	}
	subjectID, err := s.resolveSubject(ctx, run, entry.SubjectCode, entry.SubjectName)
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	facultyID, err := s.resolveFaculty(ctx, run, entry.FacultyName)
	if err != nil {
		return fmt.Errorf("faculty: %w", err)
	}
	roomID, err := s.resolveRoom(ctx, run, entry.RoomNumber)
	if err != nil {
		return fmt.Errorf("room: %w", err)
	}
	slotID, err := s.resolveTimeSlot(ctx, run, entry)
	if err != nil {
		return fmt.Errorf("time slot: %w", err)
	}

	row := &model.TimetableEntry{
		SectionID:  sectionID,
		SubjectID:  subjectID,
		FacultyID:  facultyID,
		RoomID:     roomID,
		Day:        entry.Day,
		TimeSlotID: slotID,
	}

	err = s.repo.TimetableEntry.Create(ctx, row)
	switch {
	case err == nil:
		result.Inserted++
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		result.Duplicates++
		if roomID != nil {
			backfilled, bfErr := s.backfillRoom(ctx, sectionID, entry.Day, slotID, *roomID)
			switch {
			case bfErr != nil:
				// A failed backfill is a warning, not a failure: the entry
				// itself is already stored.
				if len(result.Errors) < maxImportErrors {
					result.Errors = append(result.Errors,
						fmt.Sprintf("%s | %s | %s: room backfill failed: %v", entry.Section, entry.Day, entry.TimeSlot, bfErr))
				}
			case backfilled:
				result.Updated++
			}
		}
		return nil
	default:
		return fmt.Errorf("insert: %w", err)
	}
}

// backfillRoom sets the room of an already-stored entry that has none. An
// earlier upload may have carried the room only in a later sheet revision.
func (s *ImportService) backfillRoom(ctx context.Context, sectionID, day, slotID, roomID string) (bool, error) {
	existing, err := s.repo.TimetableEntry.GetBySectionDaySlot(ctx, sectionID, day, slotID)
	if err != nil {
		return false, err
	}
	if existing.RoomID != nil {
		return false, nil
	}
	if err := s.repo.TimetableEntry.UpdateRoom(ctx, existing.ID, roomID); err != nil {
		return false, err
	}
	return true, nil
}

// resolveProgram finds or creates the configured degree program. Every
// imported section hangs off it, so a failure here aborts the whole run.
func (s *ImportService) resolveProgram(ctx context.Context, run *importRun) error {
	program, err := s.repo.Program.GetByName(ctx, s.cfg.ProgramName)
	if err == nil {
		run.programID = program.ID
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	created := &model.Program{
		Name:       s.cfg.ProgramName,
		Department: s.cfg.ProgramDepartment,
	}
	err = s.repo.Program.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a create race; the winner's row serves.
		program, err = s.repo.Program.GetByName(ctx, s.cfg.ProgramName)
		if err != nil {
			return err
		}
		run.programID = program.ID
		return nil
	}
	if err != nil {
		return err
	}
	run.programID = created.ID
	return nil
}

func (s *ImportService) resolveSection(ctx context.Context, run *importRun, name string) (string, error) {
	key := strings.ToLower(name)
	if id, ok := run.sections[key]; ok {
		return id, nil
	}

	section, err := s.repo.Section.GetByNameAndProgram(ctx, name, run.programID)
	if err == nil {
		run.sections[key] = section.ID
		return section.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	created := &model.Section{
		Name:      name,
		ProgramID: run.programID,
		Year:      time.Now().Year(),
	}
	err = s.repo.Section.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		section, err = s.repo.Section.GetByNameAndProgram(ctx, name, run.programID)
		if err != nil {
			return "", err
		}
		run.sections[key] = section.ID
		return section.ID, nil
	}
	if err != nil {
		return "", err
	}
	run.sections[key] = created.ID
	return created.ID, nil
}

func (s *ImportService) resolveSubject(ctx context.Context, run *importRun, code, name string) (string, error) {
	if id, ok := run.subjects[code]; ok {
		return id, nil
	}

	subject, err := s.repo.Subject.GetByCode(ctx, code)
	if err == nil {
		run.subjects[code] = subject.ID
		return subject.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	created := &model.Subject{
		Code:    code,
		Name:    name,
		Credits: s.cfg.DefaultCredits,
	}
	err = s.repo.Subject.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		subject, err = s.repo.Subject.GetByCode(ctx, code)
		if err != nil {
			return "", err
		}
		run.subjects[code] = subject.ID
		return subject.ID, nil
	}
	if err != nil {
		return "", err
	}
	run.subjects[code] = created.ID
	return created.ID, nil
}

// resolveFaculty finds faculty by printed name, creating missing ones with a
// derived email and the configured starter password. The email is the unique
// key, so two distinct names slugging to the same address resolve to one row.
func (s *ImportService) resolveFaculty(ctx context.Context, run *importRun, name string) (string, error) {
	key := strings.ToLower(name)
	if id, ok := run.faculty[key]; ok {
		return id, nil
	}

	faculty, err := s.repo.Faculty.GetByName(ctx, name)
	if err == nil {
		run.faculty[key] = faculty.ID
		return faculty.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	local := slugify(name)
	if local == "" {
		local = "faculty"
	}
	email := local + "@" + facultyEmailDomain
	hash, err := s.facultyPasswordHash(run)
	if err != nil {
		return "", err
	}

	created := &model.Faculty{
		Name:       name,
		Email:      email,
		Department: s.cfg.ProgramDepartment,
		Password:   hash,
	}
	err = s.repo.Faculty.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		faculty, err = s.repo.Faculty.GetByEmail(ctx, email)
		if err != nil {
			return "", err
		}
		run.faculty[key] = faculty.ID
		return faculty.ID, nil
	}
	if err != nil {
		return "", err
	}
	run.faculty[key] = created.ID
	return created.ID, nil
}

// resolveRoom resolves a room number, or nil for online and unassigned
// sessions.
func (s *ImportService) resolveRoom(ctx context.Context, run *importRun, roomNumber string) (*string, error) {
	if roomNumber == "" {
		return nil, nil
	}
	if id, ok := run.rooms[roomNumber]; ok {
		return &id, nil
	}

	room, err := s.repo.Room.GetByNumber(ctx, roomNumber)
	if err == nil {
		run.rooms[roomNumber] = room.ID
		return &room.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &model.Room{
		RoomNumber: roomNumber,
		Capacity:   s.cfg.DefaultCapacity,
	}
	err = s.repo.Room.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		room, err = s.repo.Room.GetByNumber(ctx, roomNumber)
		if err != nil {
			return nil, err
		}
		run.rooms[roomNumber] = room.ID
		return &room.ID, nil
	}
	if err != nil {
		return nil, err
	}
	run.rooms[roomNumber] = created.ID
	return &created.ID, nil
}

func (s *ImportService) resolveTimeSlot(ctx context.Context, run *importRun, entry ParsedEntry) (string, error) {
	key := entry.StartTime + "|" + entry.EndTime
	if id, ok := run.slots[key]; ok {
		return id, nil
	}

	slot, err := s.repo.TimeSlot.GetByRange(ctx, entry.StartTime, entry.EndTime)
	if err == nil {
		run.slots[key] = slot.ID
		return slot.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	created := &model.TimeSlot{
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		SlotNumber: entry.SlotNumber,
	}
	err = s.repo.TimeSlot.Create(ctx, created)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		slot, err = s.repo.TimeSlot.GetByRange(ctx, entry.StartTime, entry.EndTime)
		if err != nil {
			return "", err
		}
		run.slots[key] = slot.ID
		return slot.ID, nil
	}
	if err != nil {
		return "", err
	}
	run.slots[key] = created.ID
	return created.ID, nil
}

// facultyPasswordHash hashes the configured starter password once per run.
func (s *ImportService) facultyPasswordHash(run *importRun) (string, error) {
	if run.passwordHash != "" {
		return run.passwordHash, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.FacultyPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash faculty password: %w", err)
	}
	run.passwordHash = string(hash)
	return run.passwordHash, nil
}

// Reset wipes every imported table, children before parents, and reports the
// per-table row counts removed. It is refused unless explicitly enabled.
func (s *ImportService) Reset(ctx context.Context) (*dto.ResetResponse, error) {
	if !s.cfg.AllowReset {
		return nil, ErrResetDisabled
	}

	tables := []struct {
		name   string
		count  func(context.Context) (int64, error)
		delete func(context.Context) error
	}{
		{"timetable_entries", s.repo.TimetableEntry.Count, s.repo.TimetableEntry.DeleteAll},
		{"sections", s.repo.Section.Count, s.repo.Section.DeleteAll},
		{"subjects", s.repo.Subject.Count, s.repo.Subject.DeleteAll},
		{"faculty", s.repo.Faculty.Count, s.repo.Faculty.DeleteAll},
		{"rooms", s.repo.Room.Count, s.repo.Room.DeleteAll},
		{"time_slots", s.repo.TimeSlot.Count, s.repo.TimeSlot.DeleteAll},
		{"programs", s.repo.Program.Count, s.repo.Program.DeleteAll},
	}

	deleted := make(map[string]int64, len(tables))
	for _, t := range tables {
		count, err := t.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", t.name, err)
		}
		if err := t.delete(ctx); err != nil {
			return nil, fmt.Errorf("delete %s: %w", t.name, err)
		}
		deleted[t.name] = count
	}

	s.log.Warn("database reset executed", zap.Any("deleted", deleted))

	return &dto.ResetResponse{Deleted: deleted}, nil
}

// validateEntry rejects entries missing a mandatory field. A rejected entry
// counts as failed and never aborts the batch.
func validateEntry(entry ParsedEntry) error {
	var missing []string
	if entry.Section == "" {
		missing = append(missing, "section")
	}
	if entry.SubjectCode == "" {
		missing = append(missing, "subject code")
	}
	if entry.Day == "" {
		missing = append(missing, "day")
	}
	if entry.StartTime == "" || entry.EndTime == "" {
		missing = append(missing, "time range")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// qualityOf computes the room-coverage summary of a parsed batch.
func qualityOf(entries []ParsedEntry) dto.ImportQuality {
	q := dto.ImportQuality{TotalEntries: len(entries)}
	for _, e := range entries {
		online := strings.Contains(strings.ToUpper(e.RawContent), "ONLINE")
		if online {
			q.OnlineClasses++
		}
		if e.RoomNumber == "" {
			q.MissingRooms++
			if !online {
				q.NonOnlineMissing++
			}
		}
	}
	return q
}

func previewOf(e ParsedEntry) dto.ParsedEntryPreview {
	return dto.ParsedEntryPreview{
		Section:     e.Section,
		Day:         e.Day,
		TimeSlot:    e.TimeSlot,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		SubjectCode: e.SubjectCode,
		SubjectName: e.SubjectName,
		FacultyName: e.FacultyName,
		RoomNumber:  e.RoomNumber,
		RawContent:  e.RawContent,
	}
}
