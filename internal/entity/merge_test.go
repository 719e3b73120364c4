package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		partial   any
		protected []string
		want      string
	}{
		{"overlay", `{"a":1,"b":2}`, map[string]any{"b": 3}, nil, `{"a":1,"b":3}`},
		{"adds new key", `{"a":1}`, json.RawMessage(`{"c":"x"}`), nil, `{"a":1,"c":"x"}`},
		{"protected key", `{"id":"1","a":1}`, []byte(`{"id":"2","a":2}`), []string{"id"}, `{"id":"1","a":2}`},
		{"nested replaced whole", `{"o":{"x":1,"y":2}}`, map[string]any{"o": map[string]int{"x": 5}}, nil, `{"o":{"x":5}}`},
		{"empty current", ``, map[string]any{"a": 1}, nil, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := merge([]byte(tt.current), tt.partial, tt.protected...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMergeRejectsNonObjectPatch(t *testing.T) {
	_, err := merge([]byte(`{}`), []byte(`[1,2]`), "id")
	assert.Error(t, err)
}
