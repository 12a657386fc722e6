package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		out  []string
	}{
		{
			name: "nil becomes Unknown",
			in:   nil,
			out:  []string{UnknownTag},
		},
		{
			name: "empty becomes Unknown",
			in:   []string{},
			out:  []string{UnknownTag},
		},
		{
			name: "only empty entries become Unknown",
			in:   []string{"", ""},
			out:  []string{UnknownTag},
		},
		{
			name: "empty entries filtered, order preserved",
			in:   []string{"Work", "", "Weekly"},
			out:  []string{"Work", "Weekly"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, NormalizeTags(tt.in))
		})
	}
}

func TestTitles(t *testing.T) {
	events := []SyncEvent{
		{Title: "Alpha"},
		{Title: "Beta"},
	}
	assert.Equal(t, []string{"Alpha", "Beta"}, Titles(events))
	assert.Empty(t, Titles(nil))
}
