package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// TimetableEntryRepository is the timetable_entries data-access interface.
type TimetableEntryRepository interface {
	Create(ctx context.Context, entry *model.TimetableEntry) error
	GetByID(ctx context.Context, id string) (*model.TimetableEntry, error)
	GetBySectionDaySlot(ctx context.Context, sectionID, day, timeSlotID string) (*model.TimetableEntry, error)
	List(ctx context.Context) ([]model.TimetableEntry, error)
	ListBySection(ctx context.Context, sectionID string) ([]model.TimetableEntry, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]model.TimetableEntry, error)
	ListByRoom(ctx context.Context, roomID string) ([]model.TimetableEntry, error)
	UpdateRoom(ctx context.Context, id, roomID string) error
	ExistsFacultyAt(ctx context.Context, facultyID, day, timeSlotID string) (bool, error)
	ExistsRoomAt(ctx context.Context, roomID, day, timeSlotID string) (bool, error)
	ExistsSectionAt(ctx context.Context, sectionID, day, timeSlotID string) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type timetableEntryRepo struct {
	db *gorm.DB
}

// NewTimetableEntryRepo creates a TimetableEntryRepository backed by gorm.
func NewTimetableEntryRepo(db *gorm.DB) TimetableEntryRepository {
	return &timetableEntryRepo{db: db}
}

func (r *timetableEntryRepo) Create(ctx context.Context, entry *model.TimetableEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *timetableEntryRepo) GetByID(ctx context.Context, id string) (*model.TimetableEntry, error) {
	var entry model.TimetableEntry
	err := r.withRelations(ctx).
		Where("id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableEntryRepo) GetBySectionDaySlot(ctx context.Context, sectionID, day, timeSlotID string) (*model.TimetableEntry, error) {
	var entry model.TimetableEntry
	err := r.db.WithContext(ctx).
		Where("section_id = ? AND day = ? AND time_slot_id = ?", sectionID, day, timeSlotID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *timetableEntryRepo) List(ctx context.Context) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.withRelations(ctx).Find(&entries).Error
	return entries, err
}

func (r *timetableEntryRepo) ListBySection(ctx context.Context, sectionID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.withRelations(ctx).
		Where("section_id = ?", sectionID).
		Find(&entries).Error
	return entries, err
}

func (r *timetableEntryRepo) ListByFaculty(ctx context.Context, facultyID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.withRelations(ctx).
		Where("faculty_id = ?", facultyID).
		Find(&entries).Error
	return entries, err
}

func (r *timetableEntryRepo) ListByRoom(ctx context.Context, roomID string) ([]model.TimetableEntry, error) {
	var entries []model.TimetableEntry
	err := r.withRelations(ctx).
		Where("room_id = ?", roomID).
		Find(&entries).Error
	return entries, err
}

func (r *timetableEntryRepo) UpdateRoom(ctx context.Context, id, roomID string) error {
	return r.db.WithContext(ctx).
		Model(&model.TimetableEntry{}).
		Where("id = ?", id).
		Update("room_id", roomID).Error
}

func (r *timetableEntryRepo) ExistsFacultyAt(ctx context.Context, facultyID, day, timeSlotID string) (bool, error) {
	return r.exists(ctx, "faculty_id = ? AND day = ? AND time_slot_id = ?", facultyID, day, timeSlotID)
}

func (r *timetableEntryRepo) ExistsRoomAt(ctx context.Context, roomID, day, timeSlotID string) (bool, error) {
	return r.exists(ctx, "room_id = ? AND day = ? AND time_slot_id = ?", roomID, day, timeSlotID)
}

func (r *timetableEntryRepo) ExistsSectionAt(ctx context.Context, sectionID, day, timeSlotID string) (bool, error) {
	return r.exists(ctx, "section_id = ? AND day = ? AND time_slot_id = ?", sectionID, day, timeSlotID)
}

func (r *timetableEntryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TimetableEntry{}).Count(&count).Error
	return count, err
}

func (r *timetableEntryRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.TimetableEntry{}).Error
}

func (r *timetableEntryRepo) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.TimetableEntry{}).
		Where(query, args...).
		Count(&count).Error
	return count > 0, err
}

func (r *timetableEntryRepo) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Section").
		Preload("Subject").
		Preload("Faculty").
		Preload("Room").
		Preload("TimeSlot").
		Order("day ASC, created_at ASC")
}
