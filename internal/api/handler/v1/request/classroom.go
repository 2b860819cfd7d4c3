package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Text fields must be present but may be empty; their content is stored as
// sent.
type CreateClassRequest struct {
	TeacherName *string `json:"teacher_name"`
	ClassName   *string `json:"class_name"`
}

func (req *CreateClassRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TeacherName, validation.NotNil),
		validation.Field(&req.ClassName, validation.NotNil),
	)
}

type JoinClassRequest struct {
	ClassCode *string `json:"class_code"`
	Name      *string `json:"name"`
}

func (req *JoinClassRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ClassCode, validation.NotNil),
		validation.Field(&req.Name, validation.NotNil),
	)
}

// AdjustPointsRequest accepts any amount, including zero and negatives.
type AdjustPointsRequest struct {
	StudentID *string `json:"student_id"`
	Amount    *int    `json:"amount"`
}

func (req *AdjustPointsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.NotNil),
		validation.Field(&req.Amount, validation.NotNil),
	)
}
