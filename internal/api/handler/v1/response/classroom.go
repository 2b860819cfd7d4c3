package response

import "time"

type Success struct {
	Success bool `json:"success"`
}

type CreateClass struct {
	TeacherID string `json:"teacher_id"`
	ClassCode string `json:"class_code"`
}

type CompleteQuest struct {
	Success bool `json:"success"`
	Reward  int  `json:"reward"`
}

type PurchaseHistoryEntry struct {
	ItemName    string    `json:"item_name"`
	PurchasedAt time.Time `json:"purchased_at"`
}
