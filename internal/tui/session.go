// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okanite/pomo/internal/domain"
)

// transitionDelay is how long "00:00" stays on screen before the next
// session mode appears.
const transitionDelay = 500 * time.Millisecond

// tickMsg is sent on every countdown second. It carries the generation it
// was scheduled under so ticks from a superseded countdown can be dropped.
type tickMsg struct {
	gen int
}

// transitionMsg fires the deferred mode change after a session completes.
type transitionMsg struct {
	gen  int
	next domain.Mode
}

// tickCmd schedules the next countdown second.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// transitionCmd schedules the one-shot deferred mode change.
func transitionCmd(gen int, next domain.Mode) tea.Cmd {
	return tea.Tick(transitionDelay, func(time.Time) tea.Msg {
		return transitionMsg{gen: gen, next: next}
	})
}

// session owns the timer and the scheduling guard shared by the fullscreen
// and inline models. Every user action bumps gen, so a tick or transition
// message scheduled before the action no longer matches and is discarded.
// That is what cancels the ticker when the countdown stops and what keeps a
// stale deferred transition from overwriting a state the user has changed.
type session struct {
	timer    *domain.Timer
	gen      int
	finished bool
}

func newSession() session {
	return session{timer: domain.New()}
}

// handleKey applies a timer key. It reports whether the key was consumed and
// returns the follow-up command, if any.
func (s *session) handleKey(key string) (tea.Cmd, bool) {
	switch key {
	case "1", "f":
		s.selectMode(domain.ModeFocus)
	case "2", "b":
		s.selectMode(domain.ModeShortBreak)
	case "3", "l":
		s.selectMode(domain.ModeLongBreak)
	case " ", "s":
		s.bump()
		s.timer.Toggle()
		if s.timer.Running {
			return tickCmd(s.gen), true
		}
	case "r":
		s.bump()
		s.timer.Reset()
	case "n":
		s.bump()
		s.timer.Skip()
	default:
		return nil, false
	}
	return nil, true
}

func (s *session) selectMode(m domain.Mode) {
	s.bump()
	s.timer.ChangeMode(m)
}

// bump invalidates every previously scheduled tick and transition.
func (s *session) bump() {
	s.gen++
	s.finished = false
}

// handleTick advances the countdown by one second and either re-arms the
// ticker or, on completion, schedules the deferred mode change.
func (s *session) handleTick(msg tickMsg) tea.Cmd {
	if msg.gen != s.gen || !s.timer.Running {
		return nil
	}
	if s.timer.Tick() {
		s.finished = true
		return transitionCmd(s.gen, s.timer.NextAfterFinish())
	}
	return tickCmd(s.gen)
}

// handleTransition applies the deferred mode change unless a user action
// landed in between.
func (s *session) handleTransition(msg transitionMsg) {
	if msg.gen != s.gen || !s.finished {
		return
	}
	s.finished = false
	s.timer.ChangeMode(msg.next)
}
