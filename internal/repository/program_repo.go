package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// ProgramRepository is the programs data-access interface.
type ProgramRepository interface {
	Create(ctx context.Context, program *model.Program) error
	GetByName(ctx context.Context, name string) (*model.Program, error)
	List(ctx context.Context) ([]model.Program, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type programRepo struct {
	db *gorm.DB
}

// NewProgramRepo creates a ProgramRepository backed by gorm.
func NewProgramRepo(db *gorm.DB) ProgramRepository {
	return &programRepo{db: db}
}

func (r *programRepo) Create(ctx context.Context, program *model.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepo) GetByName(ctx context.Context, name string) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&program).Error
	if err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepo) List(ctx context.Context) ([]model.Program, error) {
	var programs []model.Program
	err := r.db.WithContext(ctx).Order("name ASC").Find(&programs).Error
	return programs, err
}

func (r *programRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Program{}).Count(&count).Error
	return count, err
}

func (r *programRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.Program{}).Error
}
