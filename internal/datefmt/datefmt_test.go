package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	// 2022-06-15 was a Wednesday.
	ts := time.Date(2022, time.June, 15, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mode     string
		expected string
	}{
		{
			name:     "full mode",
			mode:     "full",
			expected: "Wednesday June, 15, 2022 at 8:00PM",
		},
		{
			name:     "medium mode",
			mode:     "medium",
			expected: "Wed 06, 15, 2022 8:00PM",
		},
		{
			name:     "unknown mode falls back to medium",
			mode:     "bogus",
			expected: "Wed 06, 15, 2022 8:00PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(ts, tt.mode))
		})
	}
}

func TestFormatMorningTime(t *testing.T) {
	ts := time.Date(2035, time.January, 2, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday January, 2, 2035 at 9:05AM", Format(ts, "full"))
}
