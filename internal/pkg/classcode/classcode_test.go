package classcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		code, err := Generate()
		require.NoError(t, err)
		assert.Len(t, code, Length)
		assert.True(t, Valid(code), "generated code %q must be valid", code)
		seen[code] = struct{}{}
	}

	// 36^6 possible codes, 200 draws should practically never collide.
	assert.Greater(t, len(seen), 190)
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "upper and digits", code: "AB12CD", want: true},
		{name: "all digits", code: "123456", want: true},
		{name: "lowercase", code: "ab12cd", want: false},
		{name: "too short", code: "AB12C", want: false},
		{name: "too long", code: "AB12CDE", want: false},
		{name: "symbol", code: "AB-2CD", want: false},
		{name: "empty", code: "", want: false},
		{name: "trailing newline", code: "AB12CD\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.code))
		})
	}
}
