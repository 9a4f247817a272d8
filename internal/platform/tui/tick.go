// Package tui provides the Bubble Tea integration for the life platform.
// It handles the terminal UI loop, input mapping, and simulation orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Interval bounds for the faster/slower controls.
const (
	minInterval  = 10 * time.Millisecond
	maxInterval  = 2 * time.Second
	intervalStep = 10 * time.Millisecond
)

// TickMsg is sent to trigger a generation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
// Each tick schedules the next one, so speed changes apply from the next generation.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// adjustInterval shortens or lengthens d by one step, clamped to the
// supported range. Steps grow with the interval so long delays change visibly.
func adjustInterval(d time.Duration, faster bool) time.Duration {
	step := intervalStep
	if d >= 200*time.Millisecond {
		step = d / 4
	}
	if faster {
		d -= step
	} else {
		d += step
	}
	return min(max(d, minInterval), maxInterval)
}
