package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/metrics"
	"github.com/classquest/classquest-api/internal/repository"
)

var (
	ErrQuestNotFound         = repository.ErrQuestNotFound
	ErrQuestAlreadyCompleted = repository.ErrQuestAlreadyCompleted
)

type QuestRepository interface {
	Create(ctx context.Context, quest domain.Quest) (domain.Quest, error)
	FindByClassCode(ctx context.Context, classCode, studentID string) ([]domain.Quest, error)
	Complete(ctx context.Context, studentID string, questID uint) (domain.QuestCompletion, domain.Quest, error)
}

type QuestService struct {
	repo   QuestRepository
	events EventPublisher
}

func NewQuestService(repo QuestRepository, events EventPublisher) *QuestService {
	return &QuestService{
		repo:   repo,
		events: events,
	}
}

// CreateQuest stores a quest as given; neither the reward sign nor the class
// code is checked.
func (s *QuestService) CreateQuest(ctx context.Context, quest domain.Quest) (domain.Quest, error) {
	created, err := s.repo.Create(ctx, quest)
	if err != nil {
		return domain.Quest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	publish(s.events, domain.ClassEvent{
		Type:      domain.EventQuestCreated,
		ClassCode: created.ClassCode,
		QuestID:   created.ID,
		Amount:    created.Reward,
		At:        time.Now().UTC(),
	})

	return created, nil
}

// ListQuests returns the quests of a class, newest first. When studentID is
// empty the completed flag is class wide: any student's completion marks the
// quest completed for everyone.
func (s *QuestService) ListQuests(ctx context.Context, classCode, studentID string) ([]domain.Quest, error) {
	quests, err := s.repo.FindByClassCode(ctx, classCode, studentID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByClassCode -> %w", err)
	}

	return quests, nil
}

// CompleteQuest records the completion and credits the reward atomically,
// returning the reward.
func (s *QuestService) CompleteQuest(ctx context.Context, studentID string, questID uint) (int, error) {
	completion, quest, err := s.repo.Complete(ctx, studentID, questID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Complete -> %w", err)
	}

	if quest.Reward > 0 {
		metrics.PointsAwarded.WithLabelValues(metrics.SourceQuest).Add(float64(quest.Reward))
	}
	zap.L().Info("quest completed",
		zap.String("student_id", studentID),
		zap.Uint("quest_id", questID),
		zap.Int("reward", quest.Reward),
	)
	publish(s.events, domain.ClassEvent{
		Type:      domain.EventQuestCompleted,
		ClassCode: quest.ClassCode,
		StudentID: studentID,
		QuestID:   quest.ID,
		Amount:    quest.Reward,
		At:        completion.CompletedAt,
	})

	return quest.Reward, nil
}
