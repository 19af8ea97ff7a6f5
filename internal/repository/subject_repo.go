package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// SubjectRepository is the subjects data-access interface.
type SubjectRepository interface {
	Create(ctx context.Context, subject *model.Subject) error
	GetByCode(ctx context.Context, code string) (*model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type subjectRepo struct {
	db *gorm.DB
}

// NewSubjectRepo creates a SubjectRepository backed by gorm.
func NewSubjectRepo(db *gorm.DB) SubjectRepository {
	return &subjectRepo{db: db}
}

func (r *subjectRepo) Create(ctx context.Context, subject *model.Subject) error {
	if subject.ID == "" {
		subject.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepo) GetByCode(ctx context.Context, code string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepo) List(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).Order("code ASC").Find(&subjects).Error
	return subjects, err
}

func (r *subjectRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subject{}).Count(&count).Error
	return count, err
}

func (r *subjectRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.Subject{}).Error
}
