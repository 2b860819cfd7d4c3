package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	ClassCode string `gorm:"index;not null"`
	Points    int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

type StudentDAO struct {
	db *gorm.DB
}

func NewStudentDAO(db *gorm.DB) *StudentDAO {
	return &StudentDAO{
		db: db,
	}
}

func (d *StudentDAO) Insert(ctx context.Context, student Student) (Student, error) {
	result := d.db.WithContext(ctx).Create(&student)
	if result.Error != nil {
		return Student{}, result.Error
	}

	return student, nil
}

func (d *StudentDAO) FindByID(ctx context.Context, id string) (Student, error) {
	var student Student

	result := d.db.WithContext(ctx).First(&student, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Student{}, ErrStudentNotFound
		}

		return Student{}, result.Error
	}

	return student, nil
}

// FindByClassCode returns the leaderboard of a class, highest points first.
func (d *StudentDAO) FindByClassCode(ctx context.Context, classCode string) ([]Student, error) {
	var students []Student

	result := d.db.WithContext(ctx).
		Where("class_code = ?", classCode).
		Order("points DESC").
		Find(&students)
	if result.Error != nil {
		return nil, result.Error
	}

	return students, nil
}

// AddPoints applies points = points + amount in a single statement. It
// reports whether a student row was touched; an unknown id is not an error.
func (d *StudentDAO) AddPoints(ctx context.Context, id string, amount int) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Student{}).
		Where("id = ?", id).
		UpdateColumn("points", gorm.Expr("points + ?", amount))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
