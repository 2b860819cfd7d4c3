package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/metrics"
	"github.com/classquest/classquest-api/internal/pkg/classcode"
	"github.com/classquest/classquest-api/internal/repository"
)

var (
	ErrDuplicateClassCode = repository.ErrDuplicateClassCode
	ErrClassNotFound      = repository.ErrClassNotFound
	ErrStudentNotFound    = repository.ErrStudentNotFound
)

// CodeGenerator produces a candidate class code.
type CodeGenerator func() (string, error)

type ClassroomRepository interface {
	CreateTeacher(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	FindTeacherByClassCode(ctx context.Context, classCode string) (domain.Teacher, error)
	CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error)
	FindStudentByID(ctx context.Context, id string) (domain.Student, error)
	FindStudentsByClassCode(ctx context.Context, classCode string) ([]domain.Student, error)
	AddStudentPoints(ctx context.Context, id string, amount int) (bool, error)
}

type ClassroomService struct {
	repo     ClassroomRepository
	events   EventPublisher
	generate CodeGenerator
}

func NewClassroomService(repo ClassroomRepository, events EventPublisher, generate CodeGenerator) *ClassroomService {
	if generate == nil {
		generate = classcode.Generate
	}

	return &ClassroomService{
		repo:     repo,
		events:   events,
		generate: generate,
	}
}

// CreateClass registers a teacher under a freshly generated class code. A
// code collision is reported as ErrDuplicateClassCode and not retried.
func (s *ClassroomService) CreateClass(ctx context.Context, teacherName, className string) (domain.Teacher, error) {
	code, err := s.generate()
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.generate -> %w", err)
	}

	teacher, err := s.repo.CreateTeacher(ctx, domain.Teacher{
		ID:        uuid.NewString(),
		Name:      teacherName,
		ClassCode: code,
		ClassName: className,
	})
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.CreateTeacher -> %w", err)
	}

	metrics.ClassesCreated.Inc()
	zap.L().Info("class created",
		zap.String("teacher_id", teacher.ID),
		zap.String("class_code", teacher.ClassCode),
	)

	return teacher, nil
}

func (s *ClassroomService) JoinClass(ctx context.Context, classCode, name string) (domain.Student, error) {
	if !classcode.Valid(classCode) {
		return domain.Student{}, ErrClassNotFound
	}

	if _, err := s.repo.FindTeacherByClassCode(ctx, classCode); err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.FindTeacherByClassCode -> %w", err)
	}

	student, err := s.repo.CreateStudent(ctx, domain.Student{
		ID:        uuid.NewString(),
		Name:      name,
		ClassCode: classCode,
		Points:    0,
	})
	if err != nil {
		return domain.Student{}, fmt.Errorf("s.repo.CreateStudent -> %w", err)
	}

	zap.L().Info("student joined",
		zap.String("student_id", student.ID),
		zap.String("class_code", classCode),
	)
	publish(s.events, domain.ClassEvent{
		Type:      domain.EventStudentJoined,
		ClassCode: classCode,
		StudentID: student.ID,
		At:        time.Now().UTC(),
	})

	return student, nil
}

func (s *ClassroomService) ListStudents(ctx context.Context, classCode string) ([]domain.Student, error) {
	students, err := s.repo.FindStudentsByClassCode(ctx, classCode)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindStudentsByClassCode -> %w", err)
	}

	return students, nil
}

// AdjustPoints adds amount (possibly negative) to a student's points. An
// unknown student id is silently ignored and there is no floor at zero.
func (s *ClassroomService) AdjustPoints(ctx context.Context, studentID string, amount int) error {
	updated, err := s.repo.AddStudentPoints(ctx, studentID, amount)
	if err != nil {
		return fmt.Errorf("s.repo.AddStudentPoints -> %w", err)
	}
	if !updated {
		return nil
	}

	if amount > 0 {
		metrics.PointsAwarded.WithLabelValues(metrics.SourceAdjustment).Add(float64(amount))
	}

	// The update is already committed, a failed lookup only costs the event.
	student, err := s.repo.FindStudentByID(ctx, studentID)
	if err != nil {
		if !errors.Is(err, ErrStudentNotFound) {
			zap.L().Warn("points adjusted but student lookup failed", zap.String("student_id", studentID), zap.Error(err))
		}
		return nil
	}

	publish(s.events, domain.ClassEvent{
		Type:      domain.EventPointsAdjusted,
		ClassCode: student.ClassCode,
		StudentID: student.ID,
		Amount:    amount,
		At:        time.Now().UTC(),
	})

	return nil
}
