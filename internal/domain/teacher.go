package domain

import "time"

// Teacher owns exactly one class, identified by ClassCode.
type Teacher struct {
	ID        string    `json:"teacher_id"`
	Name      string    `json:"name"`
	ClassCode string    `json:"class_code"`
	ClassName string    `json:"class_name"`
	CreatedAt time.Time `json:"-"`
}
