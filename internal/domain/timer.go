// Package domain holds the timer state machine that drives pomo.
package domain

import (
	"fmt"
	"time"
)

// Mode identifies the kind of session being counted down.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// SessionsBeforeLong is how many focus sessions make up one cycle.
// Every cycle ends in a long break instead of a short one.
const SessionsBeforeLong = 4

// SessionConfig describes one session mode. The three instances below are
// fixed for the life of the process.
type SessionConfig struct {
	Duration time.Duration
	Label    string
	Accent   string
}

var sessionConfigs = map[Mode]SessionConfig{
	ModeFocus:      {Duration: 25 * time.Minute, Label: "Focus", Accent: "focus"},
	ModeShortBreak: {Duration: 5 * time.Minute, Label: "Short Break", Accent: "break"},
	ModeLongBreak:  {Duration: 15 * time.Minute, Label: "Long Break", Accent: "break"},
}

// ConfigFor returns the session configuration for a mode.
func ConfigFor(m Mode) SessionConfig {
	return sessionConfigs[m]
}

// Modes returns the three modes in display order.
func Modes() []Mode {
	return []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}
}

// Timer is the single mutable entity: current mode, seconds left, whether the
// countdown is running, and how many focus sessions have completed naturally.
//
// Remaining counts ticks, not wall-clock time. If the host delays a tick the
// countdown stretches with it. Known drift risk, kept on purpose.
type Timer struct {
	Mode           Mode
	Remaining      int
	Running        bool
	CompletedFocus int
}

// New returns a timer ready for a first focus session.
func New() *Timer {
	return &Timer{
		Mode:      ModeFocus,
		Remaining: int(sessionConfigs[ModeFocus].Duration.Seconds()),
	}
}

// ChangeMode switches to the given mode, resets the countdown to that mode's
// full duration, and stops the timer. CompletedFocus is untouched.
func (t *Timer) ChangeMode(m Mode) {
	t.Mode = m
	t.Remaining = int(sessionConfigs[m].Duration.Seconds())
	t.Running = false
}

// Reset restores the current mode's full duration and stops the timer.
func (t *Timer) Reset() {
	t.Remaining = int(sessionConfigs[t.Mode].Duration.Seconds())
	t.Running = false
}

// Toggle flips the running flag. Toggling at zero is allowed; the next tick
// immediately reports completion again.
func (t *Timer) Toggle() {
	t.Running = !t.Running
}

// Tick advances the countdown by one second. It returns true when the session
// just reached zero: the timer stops and, for a focus session, CompletedFocus
// increments before the next-mode rule is evaluated. The caller owns the mode
// transition so it can delay it long enough for "00:00" to be seen.
func (t *Timer) Tick() bool {
	if !t.Running {
		return false
	}
	if t.Remaining > 1 {
		t.Remaining--
		return false
	}
	t.Remaining = 0
	t.Running = false
	if t.Mode == ModeFocus {
		t.CompletedFocus++
	}
	return true
}

// Skip advances to the next session without finishing the current one.
// It applies the same next-mode rule as natural completion but never
// increments CompletedFocus: skipping is not completing.
func (t *Timer) Skip() {
	t.ChangeMode(NextMode(t.Mode, t.CompletedFocus+1))
}

// NextAfterFinish returns the mode that follows a session which has just
// completed naturally (Tick returned true, so for focus sessions
// CompletedFocus already counts the session being left).
func (t *Timer) NextAfterFinish() Mode {
	return NextMode(t.Mode, t.CompletedFocus)
}

// NextMode is the transition rule shared by natural completion and skip.
// completed counts the focus session being left: every SessionsBeforeLong-th
// one earns a long break. Breaks always route back to focus.
func NextMode(m Mode, completed int) Mode {
	switch m {
	case ModeFocus:
		if completed%SessionsBeforeLong == 0 {
			return ModeLongBreak
		}
		return ModeShortBreak
	default:
		return ModeFocus
	}
}

// Config returns the active mode's session configuration.
func (t *Timer) Config() SessionConfig {
	return sessionConfigs[t.Mode]
}

// Clock formats the remaining time as MM:SS.
func (t *Timer) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Remaining/60, t.Remaining%60)
}

// Progress returns how far the countdown has advanced, in [0,1].
func (t *Timer) Progress() float64 {
	total := int(sessionConfigs[t.Mode].Duration.Seconds())
	if total == 0 {
		return 0
	}
	return 1 - float64(t.Remaining)/float64(total)
}

// CyclePosition returns how many focus sessions of the current cycle are done,
// in [0, SessionsBeforeLong]. A full cycle shows as SessionsBeforeLong until
// the long break is taken and the next focus session completes.
func (t *Timer) CyclePosition() int {
	if t.CompletedFocus == 0 {
		return 0
	}
	pos := t.CompletedFocus % SessionsBeforeLong
	if pos == 0 {
		return SessionsBeforeLong
	}
	return pos
}

// Label returns a human-readable label for the mode.
func (m Mode) Label() string {
	if cfg, ok := sessionConfigs[m]; ok {
		return cfg.Label
	}
	return "Unknown"
}
