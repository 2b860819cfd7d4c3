package domain

import "time"

const RoleStudent = "student"

type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClassCode string    `json:"class_code"`
	Points    int       `json:"points"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"-"`
}
