package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// RoomRepository is the rooms data-access interface.
type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	GetByNumber(ctx context.Context, roomNumber string) (*model.Room, error)
	List(ctx context.Context) ([]model.Room, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type roomRepo struct {
	db *gorm.DB
}

// NewRoomRepo creates a RoomRepository backed by gorm.
func NewRoomRepo(db *gorm.DB) RoomRepository {
	return &roomRepo{db: db}
}

func (r *roomRepo) Create(ctx context.Context, room *model.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) GetByNumber(ctx context.Context, roomNumber string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).
		Where("room_number = ?", roomNumber).
		First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) List(ctx context.Context) ([]model.Room, error) {
	var rooms []model.Room
	err := r.db.WithContext(ctx).Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (r *roomRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Room{}).Count(&count).Error
	return count, err
}

func (r *roomRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.Room{}).Error
}
