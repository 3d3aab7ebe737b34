package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/mode-manager/internal/session"
)

// StatusSummary carries what the status bar shows on its left side.
type StatusSummary struct {
	Selected int
	Total    int
	Locale   string
	State    session.LoadState
	Dirty    bool
	Notice   string // last commit or load outcome
	IsError  bool
}

// StatusBar renders the bottom row with selection counts and keyboard
// shortcuts.
type StatusBar struct {
	summary StatusSummary
	focus   FocusZone
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar.
func (s *StatusBar) Update(summary StatusSummary, focus FocusZone) {
	s.summary = summary
	s.focus = focus
}

func (s StatusBar) shortcuts() []string {
	key := StatusBarKeyStyle.Render
	switch s.focus {
	case FocusContent:
		return []string{key("Space") + ": toggle", key("/") + ": search", key("Ctrl+S") + ": apply"}
	case FocusOrder:
		return []string{key("K/J") + ": move", key("x") + ": remove", key("Ctrl+S") + ": apply"}
	default:
		return []string{key("Tab") + ": locale", key("Enter") + ": open", key("Ctrl+S") + ": apply"}
	}
}

// View renders the status bar.
func (s StatusBar) View() string {
	sum := s.summary
	left := fmt.Sprintf("%d/%d selected · %s", sum.Selected, sum.Total, strings.ToUpper(sum.Locale))
	switch sum.State {
	case session.Loading:
		left += " · loading…"
	case session.Failed:
		left += " · " + StatusBarErrorStyle.Render("load failed")
	}
	if sum.Dirty {
		left += " · " + StatusBarDirtyStyle.Render("modified")
	}
	if sum.Notice != "" {
		if sum.IsError {
			left += " · " + StatusBarErrorStyle.Render(sum.Notice)
		} else {
			left += " · " + sum.Notice
		}
	}

	right := strings.Join(s.shortcuts(), " · ")

	available := s.width - 2 // StatusBarStyle padding
	gap := available - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		left = ansi.Truncate(left, max(available-ansi.StringWidth(right)-1, 0), "…")
		gap = 1
	}
	return StatusBarStyle.Width(s.width).Render(left + strings.Repeat(" ", gap) + right)
}
