package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/config"
	"github.com/SHIVENDRA3030/time-table/backend/internal/dto"
	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
	"github.com/SHIVENDRA3030/time-table/backend/internal/repository"
)

var (
	// ErrProgramExists means a program with that name already exists.
	ErrProgramExists = errors.New("program already exists")
	// ErrSectionExists means the program already has a section with that name.
	ErrSectionExists = errors.New("section already exists in this program")
	// ErrSubjectExists means a subject with that code already exists.
	ErrSubjectExists = errors.New("subject already exists")
	// ErrFacultyExists means a faculty member with that email already exists.
	ErrFacultyExists = errors.New("faculty already exists")
	// ErrRoomExists means a room with that number already exists.
	ErrRoomExists = errors.New("room already exists")
)

// CatalogService manages the reference entities timetable entries point at.
type CatalogService struct {
	repo *repository.Repository
	cfg  config.ImportConfig
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo *repository.Repository, cfg config.ImportConfig) *CatalogService {
	return &CatalogService{repo: repo, cfg: cfg}
}

// ListPrograms returns all degree programs.
func (s *CatalogService) ListPrograms(ctx context.Context) ([]model.Program, error) {
	return s.repo.Program.List(ctx)
}

// CreateProgram registers a degree program.
func (s *CatalogService) CreateProgram(ctx context.Context, req *dto.CreateProgramRequest) (*model.Program, error) {
	program := &model.Program{
		Name:       strings.TrimSpace(req.Name),
		Department: strings.TrimSpace(req.Department),
	}
	if err := s.repo.Program.Create(ctx, program); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrProgramExists
		}
		return nil, err
	}
	return program, nil
}

// ListSections returns all sections.
func (s *CatalogService) ListSections(ctx context.Context) ([]model.Section, error) {
	return s.repo.Section.List(ctx)
}

// CreateSection registers a section within a program.
func (s *CatalogService) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*model.Section, error) {
	name := strings.TrimSpace(req.Name)
	year := req.Year
	if year == 0 {
		year = sectionYear(name)
	}

	section := &model.Section{
		Name:      name,
		ProgramID: req.ProgramID,
		Year:      year,
		Advisor:   req.Advisor,
	}
	if err := s.repo.Section.Create(ctx, section); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSectionExists
		}
		return nil, err
	}
	return section, nil
}

// sectionYear guesses the study year from the leading digit of a section name
// ("2AA05" reads as year 2). Defaults to 1.
func sectionYear(name string) int {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 1
	}
	if c := trimmed[0]; c >= '1' && c <= '6' {
		return int(c - '0')
	}
	return 1
}

// ListSubjects returns all subjects.
func (s *CatalogService) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return s.repo.Subject.List(ctx)
}

// CreateSubject registers a subject. The code is stored uppercased so manual
// entries and imports agree on the natural key.
func (s *CatalogService) CreateSubject(ctx context.Context, req *dto.CreateSubjectRequest) (*model.Subject, error) {
	credits := req.Credits
	if credits == 0 {
		credits = s.cfg.DefaultCredits
	}

	subject := &model.Subject{
		Code:    strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:    strings.TrimSpace(req.Name),
		Credits: credits,
	}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubjectExists
		}
		return nil, err
	}
	return subject, nil
}

// ListFaculty returns all faculty members.
func (s *CatalogService) ListFaculty(ctx context.Context) ([]model.Faculty, error) {
	return s.repo.Faculty.List(ctx)
}

// CreateFaculty registers a faculty member with the configured starter
// password.
func (s *CatalogService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*model.Faculty, error) {
	department := strings.TrimSpace(req.Department)
	if department == "" {
		department = s.cfg.ProgramDepartment
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.FacultyPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash faculty password: %w", err)
	}

	faculty := &model.Faculty{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Department: department,
		Password:   string(hash),
	}
	if err := s.repo.Faculty.Create(ctx, faculty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrFacultyExists
		}
		return nil, err
	}
	return faculty, nil
}

// ListRooms returns all rooms.
func (s *CatalogService) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.Room.List(ctx)
}

// CreateRoom registers a room. Numbers are stored uppercased to match the
// form imports extract.
func (s *CatalogService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*model.Room, error) {
	capacity := req.Capacity
	if capacity == 0 {
		capacity = s.cfg.DefaultCapacity
	}

	room := &model.Room{
		RoomNumber: strings.ToUpper(strings.TrimSpace(req.RoomNumber)),
		Capacity:   capacity,
	}
	if err := s.repo.Room.Create(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRoomExists
		}
		return nil, err
	}
	return room, nil
}

// ListTimeSlots returns all time slots ordered by start time.
func (s *CatalogService) ListTimeSlots(ctx context.Context) ([]model.TimeSlot, error) {
	return s.repo.TimeSlot.List(ctx)
}
