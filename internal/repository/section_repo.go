package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// SectionRepository is the sections data-access interface.
type SectionRepository interface {
	Create(ctx context.Context, section *model.Section) error
	GetByNameAndProgram(ctx context.Context, name, programID string) (*model.Section, error)
	List(ctx context.Context) ([]model.Section, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo creates a SectionRepository backed by gorm.
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) Create(ctx context.Context, section *model.Section) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *sectionRepo) GetByNameAndProgram(ctx context.Context, name, programID string) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Where("name = ? AND program_id = ?", name, programID).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *sectionRepo) List(ctx context.Context) ([]model.Section, error) {
	var sections []model.Section
	err := r.db.WithContext(ctx).
		Preload("Program").
		Order("name ASC").
		Find(&sections).Error
	return sections, err
}

func (r *sectionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Section{}).Count(&count).Error
	return count, err
}

func (r *sectionRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.Section{}).Error
}
