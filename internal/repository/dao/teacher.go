package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Teacher struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	ClassCode string `gorm:"uniqueIndex;not null"`
	ClassName string
	CreatedAt time.Time
}

type TeacherDAO struct {
	db *gorm.DB
}

func NewTeacherDAO(db *gorm.DB) *TeacherDAO {
	return &TeacherDAO{
		db: db,
	}
}

func (d *TeacherDAO) Insert(ctx context.Context, teacher Teacher) (Teacher, error) {
	result := d.db.WithContext(ctx).Create(&teacher)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Teacher{}, ErrDuplicateClassCode
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindByClassCode(ctx context.Context, classCode string) (Teacher, error) {
	var teacher Teacher

	result := d.db.WithContext(ctx).First(&teacher, "class_code = ?", classCode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Teacher{}, ErrClassNotFound
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}
