package repository

import (
	"context"
	"fmt"

	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/repository/dao"
)

var (
	ErrDuplicateClassCode = dao.ErrDuplicateClassCode
	ErrClassNotFound      = dao.ErrClassNotFound
	ErrStudentNotFound    = dao.ErrStudentNotFound
)

type TeacherDAO interface {
	Insert(ctx context.Context, teacher dao.Teacher) (dao.Teacher, error)
	FindByClassCode(ctx context.Context, classCode string) (dao.Teacher, error)
}

type StudentDAO interface {
	Insert(ctx context.Context, student dao.Student) (dao.Student, error)
	FindByID(ctx context.Context, id string) (dao.Student, error)
	FindByClassCode(ctx context.Context, classCode string) ([]dao.Student, error)
	AddPoints(ctx context.Context, id string, amount int) (bool, error)
}

type ClassroomRepository struct {
	teacherDAO TeacherDAO
	studentDAO StudentDAO
}

func NewClassroomRepository(teacherDAO TeacherDAO, studentDAO StudentDAO) *ClassroomRepository {
	return &ClassroomRepository{
		teacherDAO: teacherDAO,
		studentDAO: studentDAO,
	}
}

func (r *ClassroomRepository) CreateTeacher(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	created, err := r.teacherDAO.Insert(ctx, dao.Teacher{
		ID:        teacher.ID,
		Name:      teacher.Name,
		ClassCode: teacher.ClassCode,
		ClassName: teacher.ClassName,
	})
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.teacherDAO.Insert -> %w", err)
	}

	return r.teacherDaoToDomain(created), nil
}

func (r *ClassroomRepository) FindTeacherByClassCode(ctx context.Context, classCode string) (domain.Teacher, error) {
	found, err := r.teacherDAO.FindByClassCode(ctx, classCode)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.teacherDAO.FindByClassCode -> %w", err)
	}

	return r.teacherDaoToDomain(found), nil
}

func (r *ClassroomRepository) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	created, err := r.studentDAO.Insert(ctx, dao.Student{
		ID:        student.ID,
		Name:      student.Name,
		ClassCode: student.ClassCode,
		Points:    student.Points,
	})
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.studentDAO.Insert -> %w", err)
	}

	return r.studentDaoToDomain(created), nil
}

func (r *ClassroomRepository) FindStudentByID(ctx context.Context, id string) (domain.Student, error) {
	found, err := r.studentDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Student{}, fmt.Errorf("r.studentDAO.FindByID -> %w", err)
	}

	return r.studentDaoToDomain(found), nil
}

func (r *ClassroomRepository) FindStudentsByClassCode(ctx context.Context, classCode string) ([]domain.Student, error) {
	found, err := r.studentDAO.FindByClassCode(ctx, classCode)
	if err != nil {
		return nil, fmt.Errorf("r.studentDAO.FindByClassCode -> %w", err)
	}

	students := make([]domain.Student, len(found))
	for i, s := range found {
		students[i] = r.studentDaoToDomain(s)
	}

	return students, nil
}

func (r *ClassroomRepository) AddStudentPoints(ctx context.Context, id string, amount int) (bool, error) {
	updated, err := r.studentDAO.AddPoints(ctx, id, amount)
	if err != nil {
		return false, fmt.Errorf("r.studentDAO.AddPoints -> %w", err)
	}

	return updated, nil
}

func (r *ClassroomRepository) teacherDaoToDomain(t dao.Teacher) domain.Teacher {
	return domain.Teacher{
		ID:        t.ID,
		Name:      t.Name,
		ClassCode: t.ClassCode,
		ClassName: t.ClassName,
		CreatedAt: t.CreatedAt,
	}
}

func (r *ClassroomRepository) studentDaoToDomain(s dao.Student) domain.Student {
	return studentDaoToDomain(s)
}

func studentDaoToDomain(s dao.Student) domain.Student {
	return domain.Student{
		ID:        s.ID,
		Name:      s.Name,
		ClassCode: s.ClassCode,
		Points:    s.Points,
		Role:      domain.RoleStudent,
		CreatedAt: s.CreatedAt,
	}
}
