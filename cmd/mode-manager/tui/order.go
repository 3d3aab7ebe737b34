package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/ordering"
	"github.com/ruminaider/mode-manager/internal/selection"
)

// OrderPane lists the selected modes in commit order and moves them.
type OrderPane struct {
	entries []catalog.Entry
	hidden  int // selected slugs the installed catalog does not contain
	cursor  int
	offset  int
	height  int
	focused bool
}

// NewOrderPane creates an order pane over the view's display sequence.
func NewOrderPane(v selection.View) OrderPane {
	o := OrderPane{}
	o.SetView(v)
	return o
}

// SetView replaces the entries, keeping the cursor on the same entry id when
// it is still selected.
func (o *OrderPane) SetView(v selection.View) {
	id := o.CurrentID()
	o.entries = v.Ordered
	o.hidden = len(v.Hidden)
	if o.cursor >= len(o.entries) {
		o.cursor = len(o.entries) - 1
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
	o.Select(id)
}

// Select moves the cursor to the entry with id.
func (o *OrderPane) Select(id string) {
	for i, e := range o.entries {
		if e.ID == id {
			o.cursor = i
			break
		}
	}
	o.clampScroll()
}

// CurrentID returns the id of the entry under the cursor, or "".
func (o OrderPane) CurrentID() string {
	if o.cursor >= 0 && o.cursor < len(o.entries) {
		return o.entries[o.cursor].ID
	}
	return ""
}

// Len returns the number of entries shown.
func (o OrderPane) Len() int {
	return len(o.entries)
}

// SetHeight sets the available height for rendering.
func (o *OrderPane) SetHeight(h int) {
	o.height = h
	o.clampScroll()
}

// SetFocused sets whether the pane currently has keyboard focus.
func (o *OrderPane) SetFocused(f bool) {
	o.focused = f
}

func entryID(e catalog.Entry) string { return e.ID }

// Update handles key messages when the pane has focus. Moves and removals
// are emitted as messages; the root applies them and calls SetView.
func (o OrderPane) Update(msg tea.Msg) (OrderPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if o.cursor > 0 {
				o.cursor--
				o.clampScroll()
			}
		case "down", "j":
			if o.cursor < len(o.entries)-1 {
				o.cursor++
				o.clampScroll()
			}
		case "K", "shift+up":
			return o, o.move(-1)
		case "J", "shift+down":
			return o, o.move(+1)
		case "x", " ", "delete":
			if o.cursor < len(o.entries) {
				slug := o.entries[o.cursor].Slug
				return o, func() tea.Msg { return ToggleEntryMsg{Slug: slug, Selected: false} }
			}
		case "left", "h", "esc":
			return o, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusContent}
			}
		}
	}
	return o, nil
}

func (o OrderPane) move(delta int) tea.Cmd {
	moved := o.CurrentID()
	target, ok := ordering.Offset(o.entries, entryID, moved, delta)
	if !ok {
		return nil
	}
	return func() tea.Msg { return ReorderMsg{MovedID: moved, TargetID: target} }
}

func (o *OrderPane) clampScroll() {
	if o.height <= 2 {
		return
	}
	visible := o.height - 2 // title and hidden footer
	if o.cursor < o.offset {
		o.offset = o.cursor
	}
	if o.cursor >= o.offset+visible {
		o.offset = o.cursor - visible + 1
	}
}

// View renders the numbered selection.
func (o OrderPane) View() string {
	textWidth := OrderWidth - 2

	lines := make([]string, 0, o.height)
	title := fmt.Sprintf("Order (%d)", len(o.entries))
	if o.focused {
		lines = append(lines, HeaderStyle.Render(title))
	} else {
		lines = append(lines, DimStyle.Render(title))
	}

	if len(o.entries) == 0 {
		lines = append(lines, DimStyle.Render(" nothing selected"))
	}

	end := len(o.entries)
	if o.height > 2 && o.offset+o.height-2 < end {
		end = o.offset + o.height - 2
	}
	for i := o.offset; i < end; i++ {
		e := o.entries[i]
		num := fmt.Sprintf("%2d. ", i+1)
		label := ansi.Truncate(e.DisplayLabel, textWidth-len(num), "…")
		switch {
		case o.focused && i == o.cursor:
			lines = append(lines, ActiveSidebarStyle.Width(OrderWidth).Render(num+label))
		case o.focused:
			lines = append(lines, InactiveSidebarStyle.Render(PositionStyle.Render(num)+label))
		default:
			lines = append(lines, DimSidebarStyle.Render(num+label))
		}
	}

	if o.hidden > 0 {
		lines = append(lines, DimStyle.Render(fmt.Sprintf(" +%d not in this catalog", o.hidden)))
	}
	for len(lines) < o.height {
		lines = append(lines, "")
	}

	borderColor := colorSurface1
	if o.focused {
		borderColor = colorBlue
	}
	return OrderContainerStyle.
		Height(o.height).
		BorderForeground(borderColor).
		Render(strings.Join(lines, "\n"))
}
