package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_LabelAndParse(t *testing.T) {
	tests := []struct {
		in    string
		want  Priority
		label string
	}{
		{"low", PriorityLow, "Low"},
		{"MEDIUM", PriorityMedium, "Medium"},
		{" High ", PriorityHigh, "High"},
	}
	for _, tt := range tests {
		p, ok := ParsePriority(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.want, p)
		assert.Equal(t, tt.label, p.Label())
		assert.True(t, p.Valid())
	}

	_, ok := ParsePriority("urgent")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", Priority(7).Label())
	assert.False(t, Priority(0).Valid())
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	assert.True(t, TaskPatch{}.IsEmpty())
	done := true
	assert.False(t, TaskPatch{IsCompleted: &done}.IsEmpty())
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-01-31", FormatDate(d))

	_, err = ParseDate("31/01/2024")
	assert.Error(t, err)
}
