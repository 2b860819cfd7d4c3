package domain

import "time"

type ClassEventType string

const (
	EventStudentJoined  ClassEventType = "student_joined"
	EventPointsAdjusted ClassEventType = "points_adjusted"
	EventQuestCreated   ClassEventType = "quest_created"
	EventQuestCompleted ClassEventType = "quest_completed"
	EventItemPurchased  ClassEventType = "item_purchased"
)

// ClassEvent is pushed to live subscribers of a class.
type ClassEvent struct {
	Type      ClassEventType `json:"type"`
	ClassCode string         `json:"class_code"`
	StudentID string         `json:"student_id,omitempty"`
	QuestID   uint           `json:"quest_id,omitempty"`
	ItemID    uint           `json:"item_id,omitempty"`
	Amount    int            `json:"amount"`
	Balance   *int           `json:"balance,omitempty"`
	At        time.Time      `json:"at"`
}
