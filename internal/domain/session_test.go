package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", MinutesPerDay, false},
		{"24:01", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.clock)
		if tt.wantErr {
			assert.Error(t, err, "clock %q should be rejected", tt.clock)
			continue
		}
		require.NoError(t, err, "clock %q", tt.clock)
		assert.Equal(t, tt.want, got, "clock %q", tt.clock)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, minute := range []int{0, 1, 59, 60, 570, 1439} {
		parsed, err := ParseClock(FormatClock(minute))
		require.NoError(t, err)
		assert.Equal(t, minute, parsed)
	}
}

func TestSessionType_Counted(t *testing.T) {
	assert.True(t, SessionFocus.Counted())
	assert.True(t, SessionCustom.Counted())
	assert.False(t, SessionBreak.Counted())
	assert.False(t, SessionLongBreak.Counted())
}
