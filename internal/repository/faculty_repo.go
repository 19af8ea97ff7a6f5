package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/SHIVENDRA3030/time-table/backend/internal/model"
)

// pgUndefinedColumn is the SQLSTATE for "column does not exist".
const pgUndefinedColumn = "42703"

// FacultyRepository is the faculty data-access interface.
type FacultyRepository interface {
	Create(ctx context.Context, faculty *model.Faculty) error
	GetByName(ctx context.Context, name string) (*model.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*model.Faculty, error)
	List(ctx context.Context) ([]model.Faculty, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo creates a FacultyRepository backed by gorm.
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

// Create inserts a faculty row. Deployments migrated before the password
// column was introduced reject the full insert with SQLSTATE 42703; only on
// that exact signal the insert is retried without the password column. Any
// other error is returned as-is.
func (r *facultyRepo) Create(ctx context.Context, faculty *model.Faculty) error {
	if faculty.ID == "" {
		faculty.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Create(faculty).Error
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedColumn {
		return r.db.WithContext(ctx).
			Omit("password").
			Create(faculty).Error
	}

	return err
}

func (r *facultyRepo) GetByName(ctx context.Context, name string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) GetByEmail(ctx context.Context, email string) (*model.Faculty, error) {
	var faculty model.Faculty
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

func (r *facultyRepo) List(ctx context.Context) ([]model.Faculty, error) {
	var faculty []model.Faculty
	err := r.db.WithContext(ctx).Order("name ASC").Find(&faculty).Error
	return faculty, err
}

func (r *facultyRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Faculty{}).Count(&count).Error
	return count, err
}

func (r *facultyRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("id IS NOT NULL").
		Delete(&model.Faculty{}).Error
}
