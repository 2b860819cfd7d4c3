package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateQuestRequest takes title and description verbatim; neither the
// reward sign nor the class code is checked.
type CreateQuestRequest struct {
	ClassCode   *string `json:"class_code"`
	Title       *string `json:"title"`
	Description string  `json:"description"`
	Reward      int     `json:"reward"`
}

func (req *CreateQuestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ClassCode, validation.NotNil),
		validation.Field(&req.Title, validation.NotNil),
	)
}

// CompleteQuestRequest leaves QuestID unchecked: an absent or zero id is
// answered as an unknown quest.
type CompleteQuestRequest struct {
	StudentID *string `json:"student_id"`
	QuestID   uint    `json:"quest_id"`
}

func (req *CompleteQuestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.NotNil),
	)
}
