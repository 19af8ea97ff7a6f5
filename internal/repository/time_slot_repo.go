package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// TimeSlotRepository is the time_slots data-access interface.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *model.TimeSlot) error
	GetByRange(ctx context.Context, startTime, endTime string) (*model.TimeSlot, error)
	List(ctx context.Context) ([]model.TimeSlot, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type timeSlotRepo struct {
	db *gorm.DB
}

// NewTimeSlotRepo creates a TimeSlotRepository backed by gorm.
func NewTimeSlotRepo(db *gorm.DB) TimeSlotRepository {
	return &timeSlotRepo{db: db}
}

func (r *timeSlotRepo) Create(ctx context.Context, slot *model.TimeSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepo) GetByRange(ctx context.Context, startTime, endTime string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	err := r.db.WithContext(ctx).
		Where("start_time = ? AND end_time = ?", startTime, endTime).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepo) List(ctx context.Context) ([]model.TimeSlot, error) {
	var slots []model.TimeSlot
	err := r.db.WithContext(ctx).
		Order("start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TimeSlot{}).Count(&count).Error
	return count, err
}

func (r *timeSlotRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.TimeSlot{}).Error
}
