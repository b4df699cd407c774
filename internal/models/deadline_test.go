package models

import (
	"testing"
	"time"

	apperrors "agenda/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  *time.Time
		expectErr bool
	}{
		{
			name:     "full date and time",
			input:    "25-12-2024 18:30",
			expected: ptr(time.Date(2024, time.December, 25, 18, 30, 0, 0, time.Local)),
		},
		{
			name:     "empty string yields no deadline",
			input:    "",
			expected: nil,
		},
		{
			name:      "whitespace only is malformed",
			input:     "   ",
			expectErr: true,
		},
		{
			name:      "tab only is malformed",
			input:     "\t",
			expectErr: true,
		},
		{
			name:     "surrounding spaces tolerated",
			input:    " 25-12-2024 18:30 ",
			expected: ptr(time.Date(2024, time.December, 25, 18, 30, 0, 0, time.Local)),
		},
		{
			name:     "single digit fields accepted",
			input:    "5-1-2025 9:05",
			expected: ptr(time.Date(2025, time.January, 5, 9, 5, 0, 0, time.Local)),
		},
		{
			name:      "garbage",
			input:     "bad-input",
			expectErr: true,
		},
		{
			name:      "ISO order rejected",
			input:     "2024-12-25 18:30",
			expectErr: true,
		},
		{
			name:      "missing time",
			input:     "25-12-2024",
			expectErr: true,
		},
		{
			name:      "day out of range",
			input:     "31-02-2024 10:00",
			expectErr: true,
		},
		{
			name:      "hour out of range",
			input:     "25-12-2024 24:00",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deadline, err := ParseDeadline(tt.input)

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, deadline)
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidFormat))
				assert.Equal(t, InvalidDeadlineMessage, apperrors.GetUserMessage(err))
				return
			}

			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, deadline)
				return
			}
			require.NotNil(t, deadline)
			assert.True(t, tt.expected.Equal(*deadline), "got %v, want %v", *deadline, *tt.expected)
		})
	}
}

func TestParseReminderTime(t *testing.T) {
	now := time.Date(2024, time.June, 10, 14, 45, 12, 0, time.Local)

	reminder, err := ParseReminderTime("08:15", now)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, time.June, 10, 8, 15, 0, 0, time.Local).Equal(reminder))

	_, err = ParseReminderTime("8h15", now)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidFormat))
	assert.Equal(t, InvalidReminderMessage, apperrors.GetUserMessage(err))

	_, err = ParseReminderTime("25:00", now)
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	moment := time.Date(2024, time.December, 25, 18, 30, 0, 0, time.Local)

	assert.Equal(t, "25-12-2024 18:30", FormatDeadline(moment))
	assert.Equal(t, "18:30", FormatReminder(moment))
}

func TestTimeOfDay(t *testing.T) {
	morning := time.Date(2020, time.January, 1, 7, 30, 15, 500, time.Local)
	evening := time.Date(2030, time.July, 4, 19, 0, 0, 0, time.Local)

	assert.Equal(t, 7*time.Hour+30*time.Minute+15*time.Second+500, TimeOfDay(morning))
	assert.Less(t, TimeOfDay(morning), TimeOfDay(evening))
}

func ptr(t time.Time) *time.Time {
	return &t
}
