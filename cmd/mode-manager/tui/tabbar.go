package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TabBar renders one tab per catalog locale along the top of the TUI. The
// active tab is the locale whose catalog is installed; a load in flight is
// shown as pending until it completes.
type TabBar struct {
	locales []string
	active  int // index of the installed locale
	pending int // index of the locale being loaded, -1 when none
	width   int
}

// NewTabBar creates a tab bar over locales with current active.
func NewTabBar(locales []string, current string) TabBar {
	t := TabBar{locales: locales, pending: -1}
	t.SetActive(current)
	return t
}

// SetWidth sets the available width for rendering.
func (t *TabBar) SetWidth(w int) {
	t.width = w
}

// ActiveLocale returns the locale of the active tab.
func (t TabBar) ActiveLocale() string {
	if t.active >= 0 && t.active < len(t.locales) {
		return t.locales[t.active]
	}
	return ""
}

// PendingLocale returns the locale being loaded, or "".
func (t TabBar) PendingLocale() string {
	if t.pending >= 0 && t.pending < len(t.locales) {
		return t.locales[t.pending]
	}
	return ""
}

func (t TabBar) indexOf(locale string) int {
	for i, l := range t.locales {
		if l == locale {
			return i
		}
	}
	return -1
}

// SetActive marks locale as installed and clears any pending marker.
func (t *TabBar) SetActive(locale string) {
	if i := t.indexOf(locale); i >= 0 {
		t.active = i
	}
	t.pending = -1
}

// SetPending marks locale as loading.
func (t *TabBar) SetPending(locale string) {
	t.pending = t.indexOf(locale)
}

// ClearPending drops the pending marker, keeping the active tab.
func (t *TabBar) ClearPending() {
	t.pending = -1
}

// cursor is the tab new navigation starts from: the pending one if a load
// is in flight.
func (t TabBar) cursor() int {
	if t.pending >= 0 {
		return t.pending
	}
	return t.active
}

// Next returns the locale after the current one, wrapping around.
func (t TabBar) Next() string {
	if len(t.locales) == 0 {
		return ""
	}
	return t.locales[(t.cursor()+1)%len(t.locales)]
}

// Prev returns the locale before the current one, wrapping around.
func (t TabBar) Prev() string {
	if len(t.locales) == 0 {
		return ""
	}
	return t.locales[(t.cursor()-1+len(t.locales))%len(t.locales)]
}

// Update handles tab and shift+tab.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	if len(t.locales) < 2 {
		return t, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		var locale string
		switch msg.String() {
		case "tab":
			locale = t.Next()
		case "shift+tab":
			locale = t.Prev()
		default:
			return t, nil
		}
		return t, func() tea.Msg { return LocaleSwitchMsg{Locale: locale} }
	}
	return t, nil
}

// View renders the tab bar as a single horizontal line.
func (t TabBar) View() string {
	parts := make([]string, 0, len(t.locales))
	for i, l := range t.locales {
		label := strings.ToUpper(l)
		switch {
		case i == t.pending:
			parts = append(parts, PendingTabStyle.Render(label+" …"))
		case i == t.active:
			parts = append(parts, ActiveTabStyle.Render(label))
		default:
			parts = append(parts, InactiveTabStyle.Render(label))
		}
	}
	return TabBarStyle.Width(t.width).Render(strings.Join(parts, " "))
}
