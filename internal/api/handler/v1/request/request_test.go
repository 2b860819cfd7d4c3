package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr bool
	}{
		{name: "create class", req: &CreateClassRequest{TeacherName: strPtr("Ms. Kim"), ClassName: strPtr("3-2")}},
		{name: "create class without teacher", req: &CreateClassRequest{ClassName: strPtr("3-2")}, wantErr: true},
		{name: "create class with empty names", req: &CreateClassRequest{TeacherName: strPtr(""), ClassName: strPtr("")}},
		{name: "create class with long name", req: &CreateClassRequest{TeacherName: strPtr(strings.Repeat("x", 500)), ClassName: strPtr("3-2")}},
		{name: "join class", req: &JoinClassRequest{ClassCode: strPtr("ABC123"), Name: strPtr("Alice")}},
		{name: "join class without name", req: &JoinClassRequest{ClassCode: strPtr("ABC123")}, wantErr: true},
		{name: "adjust points", req: &AdjustPointsRequest{StudentID: strPtr("s-1"), Amount: intPtr(-5)}},
		{name: "adjust points by zero", req: &AdjustPointsRequest{StudentID: strPtr("s-1"), Amount: intPtr(0)}},
		{name: "adjust points without amount", req: &AdjustPointsRequest{StudentID: strPtr("s-1")}, wantErr: true},
		{name: "create quest", req: &CreateQuestRequest{ClassCode: strPtr("ABC123"), Title: strPtr("Read"), Reward: -1}},
		{name: "create quest with empty title", req: &CreateQuestRequest{ClassCode: strPtr("ABC123"), Title: strPtr("")}},
		{name: "create quest with long description", req: &CreateQuestRequest{ClassCode: strPtr("ABC123"), Title: strPtr("Read"), Description: strings.Repeat("d", 5000)}},
		{name: "create quest without title", req: &CreateQuestRequest{ClassCode: strPtr("ABC123")}, wantErr: true},
		{name: "complete quest without quest id", req: &CompleteQuestRequest{StudentID: strPtr("s-1")}},
		{name: "complete quest without student", req: &CompleteQuestRequest{QuestID: 1}, wantErr: true},
		{name: "buy item", req: &BuyItemRequest{StudentID: strPtr("s-1"), ItemID: 1}},
		{name: "buy item without student", req: &BuyItemRequest{ItemID: 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
