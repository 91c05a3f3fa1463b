package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeArguments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "object form",
			raw:  `{"days":7,"search":"from:henrik"}`,
			want: map[string]any{"days": float64(7), "search": "from:henrik"},
		},
		{
			name: "string-encoded form",
			raw:  `"{\"days\":7}"`,
			want: map[string]any{"days": float64(7)},
		},
		{
			name: "malformed degrades to empty",
			raw:  `{"days":`,
			want: map[string]any{},
		},
		{
			name: "string of garbage degrades to empty",
			raw:  `"not json at all"`,
			want: map[string]any{},
		},
		{
			name: "null degrades to empty",
			raw:  `null`,
			want: map[string]any{},
		},
		{
			name: "empty payload",
			raw:  ``,
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeArguments(json.RawMessage(tt.raw))
			assert.Equal(t, tt.want, got)
		})
	}
}
