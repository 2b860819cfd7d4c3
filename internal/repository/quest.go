package repository

import (
	"context"
	"fmt"

	"github.com/classquest/classquest-api/internal/domain"
	"github.com/classquest/classquest-api/internal/repository/dao"
)

var (
	ErrQuestNotFound         = dao.ErrQuestNotFound
	ErrQuestAlreadyCompleted = dao.ErrQuestAlreadyCompleted
)

type QuestDAO interface {
	Insert(ctx context.Context, quest dao.Quest) (dao.Quest, error)
	FindByClassCode(ctx context.Context, classCode, studentID string) ([]dao.QuestWithStatus, error)
	Complete(ctx context.Context, studentID string, questID uint) (dao.QuestCompletion, dao.Quest, error)
}

type QuestRepository struct {
	dao QuestDAO
}

func NewQuestRepository(dao QuestDAO) *QuestRepository {
	return &QuestRepository{
		dao: dao,
	}
}

func (r *QuestRepository) Create(ctx context.Context, quest domain.Quest) (domain.Quest, error) {
	created, err := r.dao.Insert(ctx, dao.Quest{
		ClassCode:   quest.ClassCode,
		Title:       quest.Title,
		Description: quest.Description,
		Reward:      quest.Reward,
	})
	if err != nil {
		return domain.Quest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created, false), nil
}

func (r *QuestRepository) FindByClassCode(ctx context.Context, classCode, studentID string) ([]domain.Quest, error) {
	found, err := r.dao.FindByClassCode(ctx, classCode, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByClassCode -> %w", err)
	}

	quests := make([]domain.Quest, len(found))
	for i, q := range found {
		quests[i] = r.daoToDomain(q.Quest, q.Completed)
	}

	return quests, nil
}

func (r *QuestRepository) Complete(ctx context.Context, studentID string, questID uint) (domain.QuestCompletion, domain.Quest, error) {
	completion, quest, err := r.dao.Complete(ctx, studentID, questID)
	if err != nil {
		return domain.QuestCompletion{}, domain.Quest{}, fmt.Errorf("r.dao.Complete -> %w", err)
	}

	return domain.QuestCompletion{
		StudentID:   completion.StudentID,
		QuestID:     completion.QuestID,
		CompletedAt: completion.CompletedAt,
	}, r.daoToDomain(quest, true), nil
}

func (r *QuestRepository) daoToDomain(q dao.Quest, completed bool) domain.Quest {
	return domain.Quest{
		ID:          q.ID,
		ClassCode:   q.ClassCode,
		Title:       q.Title,
		Description: q.Description,
		Reward:      q.Reward,
		Completed:   completed,
		CreatedAt:   q.CreatedAt,
	}
}
