package domain

import "time"

type Quest struct {
	ID          uint      `json:"id"`
	ClassCode   string    `json:"class_code"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      int       `json:"reward"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"-"`
}

type QuestCompletion struct {
	StudentID   string    `json:"student_id"`
	QuestID     uint      `json:"quest_id"`
	CompletedAt time.Time `json:"completed_at"`
}
