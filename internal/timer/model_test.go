package timer

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock returns a clock that advances by the given step per call.
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func TestModel_FocusTimeoutMovesToBreak(t *testing.T) {
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	m := New(25*time.Minute, 5*time.Minute, tickingClock(start, 25*time.Minute))

	updated, cmd := m.Update(timer.TimeoutMsg{})
	model := updated.(Model)

	assert.Equal(t, PhaseBreak, model.Phase())
	assert.NotNil(t, cmd, "break countdown should start")

	focusStart, focusEnd, ok := model.FocusedInterval()
	require.True(t, ok)
	assert.Equal(t, start, focusStart)
	assert.Equal(t, start.Add(25*time.Minute), focusEnd)
}

func TestModel_BreakTimeoutQuits(t *testing.T) {
	m := New(25*time.Minute, 5*time.Minute, nil)

	afterFocus, _ := m.Update(timer.TimeoutMsg{})
	afterBreak, cmd := afterFocus.(Model).Update(timer.TimeoutMsg{})

	assert.Equal(t, PhaseDone, afterBreak.(Model).Phase())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ZeroBreakSkipsBreakPhase(t *testing.T) {
	m := New(25*time.Minute, 0, nil)

	updated, cmd := m.Update(timer.TimeoutMsg{})
	assert.Equal(t, PhaseDone, updated.(Model).Phase())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_QuitKeyEndsFocusInterval(t *testing.T) {
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	m := New(25*time.Minute, 5*time.Minute, tickingClock(start, 10*time.Minute))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	model := updated.(Model)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	focusStart, focusEnd, ok := model.FocusedInterval()
	require.True(t, ok)
	assert.Equal(t, start, focusStart)
	assert.Equal(t, start.Add(10*time.Minute), focusEnd)
}

func TestModel_ShortFocusNotLoggable(t *testing.T) {
	start := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	m := New(25*time.Minute, 0, tickingClock(start, 20*time.Second))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	_, _, ok := updated.(Model).FocusedInterval()
	assert.False(t, ok, "sub-minute focus is below session resolution")
}

func TestFormatRemaining(t *testing.T) {
	assert.Equal(t, "25:00", formatRemaining(25*time.Minute))
	assert.Equal(t, "00:09", formatRemaining(9*time.Second))
	assert.Equal(t, "00:00", formatRemaining(-time.Second))
}
