package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type BuyItemRequest struct {
	StudentID *string `json:"student_id"`
	ItemID    uint    `json:"item_id"`
}

func (req *BuyItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.NotNil),
	)
}
