package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/classquest/classquest-api/internal/domain"
)

type MockClassroomRepository struct {
	mock.Mock
}

func (m *MockClassroomRepository) CreateTeacher(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	args := m.Called(ctx, teacher)
	return args.Get(0).(domain.Teacher), args.Error(1)
}

func (m *MockClassroomRepository) FindTeacherByClassCode(ctx context.Context, classCode string) (domain.Teacher, error) {
	args := m.Called(ctx, classCode)
	return args.Get(0).(domain.Teacher), args.Error(1)
}

func (m *MockClassroomRepository) CreateStudent(ctx context.Context, student domain.Student) (domain.Student, error) {
	args := m.Called(ctx, student)
	return args.Get(0).(domain.Student), args.Error(1)
}

func (m *MockClassroomRepository) FindStudentByID(ctx context.Context, id string) (domain.Student, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Student), args.Error(1)
}

func (m *MockClassroomRepository) FindStudentsByClassCode(ctx context.Context, classCode string) ([]domain.Student, error) {
	args := m.Called(ctx, classCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Student), args.Error(1)
}

func (m *MockClassroomRepository) AddStudentPoints(ctx context.Context, id string, amount int) (bool, error) {
	args := m.Called(ctx, id, amount)
	return args.Bool(0), args.Error(1)
}

type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) Create(ctx context.Context, quest domain.Quest) (domain.Quest, error) {
	args := m.Called(ctx, quest)
	return args.Get(0).(domain.Quest), args.Error(1)
}

func (m *MockQuestRepository) FindByClassCode(ctx context.Context, classCode, studentID string) ([]domain.Quest, error) {
	args := m.Called(ctx, classCode, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestRepository) Complete(ctx context.Context, studentID string, questID uint) (domain.QuestCompletion, domain.Quest, error) {
	args := m.Called(ctx, studentID, questID)
	return args.Get(0).(domain.QuestCompletion), args.Get(1).(domain.Quest), args.Error(2)
}

type MockMarketRepository struct {
	mock.Mock
}

func (m *MockMarketRepository) FindAllItems(ctx context.Context) ([]domain.MarketItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketItem), args.Error(1)
}

func (m *MockMarketRepository) Buy(ctx context.Context, studentID string, itemID uint) (domain.Purchase, domain.Student, error) {
	args := m.Called(ctx, studentID, itemID)
	return args.Get(0).(domain.Purchase), args.Get(1).(domain.Student), args.Error(2)
}

func (m *MockMarketRepository) FindPurchasesByStudentID(ctx context.Context, studentID string) ([]domain.Purchase, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event domain.ClassEvent) {
	m.Called(event)
}

func eventOfType(eventType domain.ClassEventType) interface{} {
	return mock.MatchedBy(func(e domain.ClassEvent) bool {
		return e.Type == eventType
	})
}
