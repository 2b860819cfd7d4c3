package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Quest struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	ClassCode   string `gorm:"index;not null"`
	Title       string
	Description string
	Reward      int
	CreatedAt   time.Time
}

// QuestCompletion allows one row per (student, quest) pair.
type QuestCompletion struct {
	StudentID   string    `gorm:"primaryKey"`
	QuestID     uint      `gorm:"primaryKey;autoIncrement:false"`
	CompletedAt time.Time `gorm:"not null"`
}

// QuestWithStatus is a quest row annotated with its completion flag.
type QuestWithStatus struct {
	Quest
	Completed bool
}

const (
	questsByClassQuery = `
		SELECT q.id, q.class_code, q.title, q.description, q.reward, q.created_at,
		       EXISTS (
		           SELECT 1 FROM quest_completions qc WHERE qc.quest_id = q.id
		       ) AS completed
		FROM quests q
		WHERE q.class_code = ?
		ORDER BY q.id DESC`

	questsByClassForStudentQuery = `
		SELECT q.id, q.class_code, q.title, q.description, q.reward, q.created_at,
		       EXISTS (
		           SELECT 1 FROM quest_completions qc WHERE qc.quest_id = q.id AND qc.student_id = ?
		       ) AS completed
		FROM quests q
		WHERE q.class_code = ?
		ORDER BY q.id DESC`
)

type QuestDAO struct {
	db  *gorm.DB
	now func() time.Time
}

func NewQuestDAO(db *gorm.DB) *QuestDAO {
	return &QuestDAO{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (d *QuestDAO) Insert(ctx context.Context, quest Quest) (Quest, error) {
	result := d.db.WithContext(ctx).Create(&quest)
	if result.Error != nil {
		return Quest{}, result.Error
	}

	return quest, nil
}

// FindByClassCode lists a class's quests, newest first. With an empty
// studentID a quest counts as completed once any student completed it.
func (d *QuestDAO) FindByClassCode(ctx context.Context, classCode, studentID string) ([]QuestWithStatus, error) {
	var quests []QuestWithStatus

	var result *gorm.DB
	if studentID == "" {
		result = d.db.WithContext(ctx).Raw(questsByClassQuery, classCode).Scan(&quests)
	} else {
		result = d.db.WithContext(ctx).Raw(questsByClassForStudentQuery, studentID, classCode).Scan(&quests)
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return quests, nil
}

// Complete records the completion and credits the reward in one transaction.
func (d *QuestDAO) Complete(ctx context.Context, studentID string, questID uint) (QuestCompletion, Quest, error) {
	var (
		completion QuestCompletion
		quest      Quest
	)

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&QuestCompletion{}).
			Where("student_id = ? AND quest_id = ?", studentID, questID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrQuestAlreadyCompleted
		}

		if err := tx.First(&quest, "id = ?", questID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestNotFound
			}
			return err
		}

		completion = QuestCompletion{
			StudentID:   studentID,
			QuestID:     questID,
			CompletedAt: d.now(),
		}
		if err := tx.Create(&completion).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrQuestAlreadyCompleted
			}
			return err
		}

		return tx.Model(&Student{}).
			Where("id = ?", studentID).
			UpdateColumn("points", gorm.Expr("points + ?", quest.Reward)).Error
	})
	if err != nil {
		return QuestCompletion{}, Quest{}, err
	}

	return completion, quest, nil
}
