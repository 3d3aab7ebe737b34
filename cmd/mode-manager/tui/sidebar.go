package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/selection"
)

// SidebarEntry holds display data for one framework in the sidebar.
type SidebarEntry struct {
	ID       string
	Title    string
	Selected int // entries of the framework currently selected
	Total    int
}

// SidebarEntries summarizes every framework of the view's catalog, general
// purpose first.
func SidebarEntries(v selection.View) []SidebarEntry {
	fws := v.Catalog.AllFrameworks()
	out := make([]SidebarEntry, 0, len(fws))
	for _, fw := range fws {
		e := SidebarEntry{ID: fw.ID, Title: frameworkTitle(fw)}
		for _, sg := range fw.Subgroups {
			for _, en := range sg.Entries {
				e.Total++
				if v.IsSelected(en.ID) {
					e.Selected++
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func frameworkTitle(fw catalog.Framework) string {
	if fw.Title != "" {
		return fw.Title
	}
	if fw.ID == catalog.GeneralPurposeID {
		return "General purpose"
	}
	return fw.ID
}

// Sidebar renders the left-hand framework navigation.
type Sidebar struct {
	entries []SidebarEntry
	active  int
	offset  int
	height  int
	focused bool
}

// NewSidebar creates a sidebar over entries.
func NewSidebar(entries []SidebarEntry) Sidebar {
	return Sidebar{entries: entries}
}

// SetHeight sets the available height for rendering.
func (s *Sidebar) SetHeight(h int) {
	s.height = h
	s.clampScroll()
}

// SetFocused sets whether the sidebar currently has keyboard focus.
func (s *Sidebar) SetFocused(f bool) {
	s.focused = f
}

// SetEntries replaces the entries. The cursor stays on the framework with
// the same id when it still exists.
func (s *Sidebar) SetEntries(entries []SidebarEntry) {
	id := s.ActiveID()
	s.entries = entries
	s.active = 0
	for i, e := range entries {
		if e.ID == id {
			s.active = i
			break
		}
	}
	s.clampScroll()
}

// Active returns the index of the highlighted framework.
func (s Sidebar) Active() int {
	return s.active
}

// ActiveID returns the id of the highlighted framework, or "".
func (s Sidebar) ActiveID() string {
	if s.active >= 0 && s.active < len(s.entries) {
		return s.entries[s.active].ID
	}
	return ""
}

// Update handles key messages when the sidebar has focus.
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.active > 0 {
				s.active--
				s.clampScroll()
				return s, s.switched()
			}
		case "down", "j":
			if s.active < len(s.entries)-1 {
				s.active++
				s.clampScroll()
				return s, s.switched()
			}
		case "enter", "right", "l":
			return s, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusContent}
			}
		}
	}
	return s, nil
}

func (s Sidebar) switched() tea.Cmd {
	i := s.active
	return func() tea.Msg { return FrameworkSwitchMsg{Index: i} }
}

func (s *Sidebar) clampScroll() {
	if s.height <= 0 {
		return
	}
	if s.active < s.offset {
		s.offset = s.active
	}
	if s.active >= s.offset+s.height {
		s.offset = s.active - s.height + 1
	}
}

// View renders the framework list with right-aligned selection counts.
func (s Sidebar) View() string {
	rowWidth := SidebarWidth
	textWidth := rowWidth - 1 // minus PaddingLeft(1)

	lines := make([]string, 0, s.height)
	end := len(s.entries)
	if s.height > 0 && s.offset+s.height < end {
		end = s.offset + s.height
	}
	for i := s.offset; i < end; i++ {
		e := s.entries[i]
		count := fmt.Sprintf("%d/%d", e.Selected, e.Total)
		name := ansi.Truncate(e.Title, textWidth-len(count)-1, "…")
		gap := textWidth - ansi.StringWidth(name) - len(count)
		if gap < 1 {
			gap = 1
		}
		label := name + strings.Repeat(" ", gap) + count

		switch {
		case i == s.active && s.focused:
			lines = append(lines, ActiveSidebarStyle.Width(rowWidth).Render(label))
		case i == s.active:
			lines = append(lines, DimActiveSidebarStyle.Width(rowWidth).Render(label))
		case s.focused:
			lines = append(lines, InactiveSidebarStyle.Width(rowWidth).Render(label))
		default:
			lines = append(lines, DimSidebarStyle.Width(rowWidth).Render(label))
		}
	}
	for len(lines) < s.height {
		lines = append(lines, "")
	}

	borderColor := colorSurface1
	if s.focused {
		borderColor = colorBlue
	}
	return SidebarContainerStyle.
		Height(s.height).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}
