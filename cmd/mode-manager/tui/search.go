package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Search is the "/" filter prompt above the picker. While active it takes
// every key; the root reads Value after each update and filters the picker.
type Search struct {
	input  textinput.Model
	active bool
}

// NewSearch creates an inactive search prompt.
func NewSearch() Search {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = SearchPromptStyle
	ti.Placeholder = "filter modes"
	ti.CharLimit = 64
	return Search{input: ti}
}

// Open focuses the prompt, keeping any previous query.
func (s *Search) Open() tea.Cmd {
	s.active = true
	return s.input.Focus()
}

// Close blurs the prompt. With clear, the query is dropped as well.
func (s *Search) Close(clear bool) {
	s.active = false
	s.input.Blur()
	if clear {
		s.input.SetValue("")
	}
}

// Active reports whether the prompt has keyboard focus.
func (s Search) Active() bool {
	return s.active
}

// Value returns the current query.
func (s Search) Value() string {
	return s.input.Value()
}

// SetWidth sets the width of the input.
func (s *Search) SetWidth(w int) {
	s.input.Width = max(w-4, 10)
}

// Update handles keys while the prompt is active. Esc clears the query and
// enter keeps it; both give focus back to the picker.
func (s Search) Update(msg tea.Msg) (Search, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			s.Close(true)
			return s, nil
		case "enter", "down":
			s.Close(false)
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the prompt, or the kept query when inactive.
func (s Search) View() string {
	if !s.active && s.input.Value() == "" {
		return ""
	}
	if !s.active {
		return SearchPromptStyle.Render("/") + DimStyle.Render(s.input.Value()+"  (/ to edit, esc to clear)")
	}
	return s.input.View()
}
