// Package timer implements the countdown program: a focus phase
// followed by an optional break phase. The completed focus interval
// is exposed to the host command, which records it as a session.
package timer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
	PhaseDone  Phase = "done"
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleClock  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2")).Bold(true)
	styleHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleOnHold = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
)

// Model runs a focus countdown and then a break countdown. It tracks
// the wall-clock focus interval so the caller can log it afterwards.
type Model struct {
	phase         Phase
	countdown     timer.Model
	bar           progress.Model
	focusDuration time.Duration
	breakDuration time.Duration

	focusStart time.Time
	focusEnd   time.Time
	paused     bool
	quitting   bool

	now func() time.Time
}

// New builds a timer model. breakDuration may be zero to skip the
// break phase. The clock injection keeps tests deterministic.
func New(focusDuration, breakDuration time.Duration, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		phase:         PhaseFocus,
		countdown:     timer.New(focusDuration),
		bar:           progress.New(progress.WithDefaultGradient()),
		focusDuration: focusDuration,
		breakDuration: breakDuration,
		focusStart:    now(),
		now:           now,
	}
}

func (m Model) Init() tea.Cmd {
	return m.countdown.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.finishFocus()
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			return m, m.countdown.Toggle()
		}

	case timer.TimeoutMsg:
		switch m.phase {
		case PhaseFocus:
			m.finishFocus()
			if m.breakDuration <= 0 {
				m.phase = PhaseDone
				return m, tea.Quit
			}
			m.phase = PhaseBreak
			m.countdown = timer.New(m.breakDuration)
			return m, m.countdown.Init()
		case PhaseBreak:
			m.phase = PhaseDone
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.countdown, cmd = m.countdown.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting || m.phase == PhaseDone {
		return ""
	}

	title := "Focus"
	total := m.focusDuration
	if m.phase == PhaseBreak {
		title = "Break"
		total = m.breakDuration
	}

	remaining := m.countdown.Timeout
	pct := 0.0
	if total > 0 {
		pct = 1 - remaining.Seconds()/total.Seconds()
	}

	state := ""
	if m.paused {
		state = "  " + styleOnHold.Render("paused")
	}

	return fmt.Sprintf("\n  %s  %s%s\n\n  %s\n\n  %s\n",
		styleTitle.Render(title),
		styleClock.Render(formatRemaining(remaining)),
		state,
		m.bar.ViewAs(pct),
		styleHelp.Render("space pause · q quit"),
	)
}

// finishFocus closes the focus interval once; later calls are no-ops.
func (m *Model) finishFocus() {
	if m.phase != PhaseFocus || !m.focusEnd.IsZero() {
		return
	}
	m.focusEnd = m.now()
}

// FocusedInterval returns the wall-clock focus interval. ok is false
// when less than a minute of focus elapsed, which is below session
// resolution.
func (m Model) FocusedInterval() (start, end time.Time, ok bool) {
	if m.focusEnd.IsZero() || m.focusEnd.Sub(m.focusStart) < time.Minute {
		return time.Time{}, time.Time{}, false
	}
	return m.focusStart, m.focusEnd, true
}

// Phase reports which phase the model is in.
func (m Model) Phase() Phase {
	return m.phase
}

func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
