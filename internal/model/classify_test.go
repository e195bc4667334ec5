package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Priority
	}{
		{name: "exact-high", reply: "High", want: PriorityHigh},
		{name: "padded-medium", reply: "  Medium\n", want: PriorityMedium},
		{name: "upper-low", reply: "LOW", want: PriorityLow},
		{name: "high-in-sentence", reply: "The priority is HIGH.", want: PriorityHigh},
		{name: "high-beats-medium", reply: "medium or high", want: PriorityHigh},
		{name: "medium-beats-low", reply: "low-to-medium", want: PriorityMedium},
		{name: "unrecognized-defaults-low", reply: "I cannot classify this.", want: PriorityLow},
		{name: "empty-defaults-low", reply: "", want: PriorityLow},
		{name: "substring-match", reply: "highly dangerous", want: PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePriority(tt.reply)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestPrioritySeverity(t *testing.T) {
	assert.Equal(t, 3, PriorityHigh.Severity())
	assert.Equal(t, 2, PriorityMedium.Severity())
	assert.Equal(t, 1, PriorityLow.Severity())
	assert.False(t, Priority("unknown").Valid())
}
