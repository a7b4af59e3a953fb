package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONToString(t *testing.T) {
	t.Parallel()

	input := map[string][]float64{"operands": {1, 2}}
	assert.Equal(t, `{"operands":[1,2]}`, JSONToString(input, false))
	assert.Contains(t, JSONToString(input, true), "\n  \"operands\"")
	assert.True(t, strings.HasPrefix(JSONToString(make(chan int), false), `{"error":`))
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short", "1 2 3", 10, "1 2 3"},
		{"exact", "12345", 5, "12345"},
		{"long", "1234567", 3, "123... (truncated, total: 7 chars)"},
		{"runes", "ππππ", 2, "ππ... (truncated, total: 4 chars)"},
		{"default", strings.Repeat("x", DefaultMaxStringLength), 0, strings.Repeat("x", DefaultMaxStringLength)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxLen))
		})
	}
}
