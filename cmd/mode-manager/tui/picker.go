package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/selection"
	"github.com/sahilm/fuzzy"
)

// PickerItem represents a single row in the mode picker.
type PickerItem struct {
	Key         string // entry id, or subgroup id for headers
	Slug        string
	Display     string
	Selected    bool
	IsHeader    bool               // subgroup header, toggles the whole subgroup
	State       selection.TriState // header only
	Description string             // optional description rendered below headers
	Position    int                // 1-based position in the selection, 0 when not selected
}

// FrameworkPickerItems builds the rows for one framework: a header per
// subgroup followed by its description and entries.
func FrameworkPickerItems(fw catalog.Framework, v selection.View) []PickerItem {
	positions := make(map[string]int, len(v.Ordered))
	for i, e := range v.Ordered {
		positions[e.Slug] = i + 1
	}

	var items []PickerItem
	for _, sg := range fw.Subgroups {
		if len(sg.Entries) == 0 {
			continue
		}
		items = append(items, PickerItem{
			Key:      sg.ID,
			Display:  sg.FullTitle,
			IsHeader: true,
			State:    v.State(sg.ID),
			Selected: v.State(sg.ID) == selection.Full,
		})
		if sg.Description != "" {
			items = append(items, PickerItem{Description: sg.Description})
		}
		for _, e := range sg.Entries {
			items = append(items, PickerItem{
				Key:      e.ID,
				Slug:     e.Slug,
				Display:  e.DisplayLabel,
				Selected: v.IsSelected(e.ID),
				Position: positions[e.Slug],
			})
		}
	}
	return items
}

// isSelectableItem returns true for a mode row.
func isSelectableItem(it PickerItem) bool {
	return !it.IsHeader && it.Description == ""
}

// Picker is the multi-select list of one framework's subgroups and modes.
type Picker struct {
	items   []PickerItem
	rows    []int // indices into items that are shown, filtered when searching
	filter  string
	cursor  int // index into rows
	offset  int // scroll offset into rows
	height  int
	width   int
	focused bool
}

// NewPicker creates a Picker with the given items. The cursor is placed on
// the first row that can be toggled.
func NewPicker(items []PickerItem) Picker {
	p := Picker{height: 20}
	p.SetItems(items)
	return p
}

// SetItems replaces all items and resets the cursor. An active filter is
// kept.
func (p *Picker) SetItems(items []PickerItem) {
	p.items = items
	p.cursor = 0
	p.offset = 0
	p.applyFilter()
	p.cursor = p.firstFocusable()
	p.clampScroll()
}

// Refresh replaces the items, keeping the cursor on the row with the same
// key. Used after a selection change redraws the same framework.
func (p *Picker) Refresh(items []PickerItem) {
	key := p.CurrentKey()
	offset := p.offset
	p.items = items
	p.applyFilter()
	p.cursor = p.firstFocusable()
	for i, idx := range p.rows {
		if p.items[idx].Key == key && key != "" {
			p.cursor = i
			break
		}
	}
	p.offset = offset
	p.clampScroll()
}

// SetFilter narrows the rows to modes fuzzily matching query, with their
// subgroup headers. An empty query shows everything.
func (p *Picker) SetFilter(query string) {
	if query == p.filter {
		return
	}
	p.filter = query
	p.offset = 0
	p.applyFilter()
	p.cursor = p.firstFocusable()
	p.clampScroll()
}

// Filter returns the active filter query.
func (p Picker) Filter() string {
	return p.filter
}

// pickerSource adapts selectable items to fuzzy.Source.
type pickerSource struct {
	items   []PickerItem
	indices []int
}

func (s pickerSource) String(i int) string {
	it := s.items[s.indices[i]]
	return strings.ToLower(it.Display + " " + it.Slug)
}

func (s pickerSource) Len() int { return len(s.indices) }

func (p *Picker) applyFilter() {
	p.rows = make([]int, 0, len(p.items))
	if p.filter == "" {
		for i := range p.items {
			p.rows = append(p.rows, i)
		}
		return
	}

	src := pickerSource{items: p.items}
	for i, it := range p.items {
		if isSelectableItem(it) {
			src.indices = append(src.indices, i)
		}
	}
	matched := make(map[int]bool)
	for _, m := range fuzzy.FindFrom(strings.ToLower(p.filter), src) {
		matched[src.indices[m.Index]] = true
	}

	// Keep item order; a header is shown when any of its modes matched.
	header := -1
	headerShown := false
	for i, it := range p.items {
		switch {
		case it.IsHeader:
			header, headerShown = i, false
		case matched[i]:
			if header >= 0 && !headerShown {
				p.rows = append(p.rows, header)
				headerShown = true
			}
			p.rows = append(p.rows, i)
		}
	}
}

// CurrentKey returns the key of the row under the cursor, or "".
func (p Picker) CurrentKey() string {
	if it, ok := p.current(); ok {
		return it.Key
	}
	return ""
}

func (p Picker) current() (PickerItem, bool) {
	if p.cursor < 0 || p.cursor >= len(p.rows) {
		return PickerItem{}, false
	}
	return p.items[p.rows[p.cursor]], true
}

// VisibleSlugs returns the slugs of the mode rows currently shown.
func (p Picker) VisibleSlugs() []string {
	var out []string
	for _, idx := range p.rows {
		if it := p.items[idx]; isSelectableItem(it) {
			out = append(out, it.Slug)
		}
	}
	return out
}

// SelectedCount returns the number of selected mode rows.
func (p Picker) SelectedCount() int {
	n := 0
	for _, it := range p.items {
		if isSelectableItem(it) && it.Selected {
			n++
		}
	}
	return n
}

// TotalCount returns the number of mode rows.
func (p Picker) TotalCount() int {
	n := 0
	for _, it := range p.items {
		if isSelectableItem(it) {
			n++
		}
	}
	return n
}

// SetHeight sets the viewport height.
func (p *Picker) SetHeight(h int) {
	p.height = h
	p.clampScroll()
}

// SetWidth sets the available width.
func (p *Picker) SetWidth(w int) {
	p.width = w
}

// SetFocused sets whether this picker currently has keyboard focus.
func (p *Picker) SetFocused(f bool) {
	p.focused = f
}

// Update handles key messages when the picker has focus. Toggles are not
// applied here; they are emitted as messages for the root to apply to the
// selection, which then refreshes the picker.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			p.moveCursor(-1)
		case "down", "j":
			p.moveCursor(+1)
		case "pgup":
			p.moveCursor(-p.height)
		case "pgdown":
			p.moveCursor(+p.height)
		case " ", "enter":
			return p, p.toggleCurrent()
		case "a":
			return p, p.selectVisible(true)
		case "n":
			return p, p.selectVisible(false)
		case "left", "h", "esc":
			return p, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusSidebar}
			}
		case "right", "l", "o":
			return p, func() tea.Msg {
				return FocusChangeMsg{Zone: FocusOrder}
			}
		}
	}
	return p, nil
}

func (p Picker) toggleCurrent() tea.Cmd {
	it, ok := p.current()
	if !ok {
		return nil
	}
	switch {
	case it.IsHeader:
		return func() tea.Msg { return ToggleSubgroupMsg{ID: it.Key} }
	case isSelectableItem(it):
		return func() tea.Msg { return ToggleEntryMsg{Slug: it.Slug, Selected: !it.Selected} }
	}
	return nil
}

func (p Picker) selectVisible(selected bool) tea.Cmd {
	slugs := p.VisibleSlugs()
	if len(slugs) == 0 {
		return nil
	}
	return func() tea.Msg { return SelectManyMsg{Slugs: slugs, Selected: selected} }
}

// View renders the picker list with scrolling support.
func (p Picker) View() string {
	if len(p.rows) == 0 {
		if p.filter != "" {
			return ContentPaneStyle.Render(DimStyle.Render("(no matches)"))
		}
		return ContentPaneStyle.Render(DimStyle.Render("(no modes)"))
	}

	visibleItems := p.height
	hasAbove := p.offset > 0
	hasBelow := p.offset+p.height < len(p.rows)
	if hasAbove {
		visibleItems--
	}
	if hasBelow {
		visibleItems--
	}
	if visibleItems < 1 {
		visibleItems = 1
	}

	var b strings.Builder
	if hasAbove {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}

	end := p.offset + visibleItems
	if end > len(p.rows) {
		end = len(p.rows)
	}
	for r := p.offset; r < end; r++ {
		it := p.items[p.rows[r]]
		onCursor := p.focused && r == p.cursor

		cursor := "  "
		if onCursor {
			cursor = "> "
		}

		if it.Description != "" {
			b.WriteString("      " + DimStyle.Render(it.Description) + "\n")
			continue
		}

		if it.IsHeader {
			line := fmt.Sprintf("%s ── %s ──", p.checkbox(triMarker(it.State), it.State), it.Display)
			if p.focused {
				line = HeaderStyle.Render(line)
			} else {
				line = DimStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
			continue
		}

		state := selection.Unselected
		marker := "[ ]"
		if it.Selected {
			state, marker = selection.Full, "[x]"
		}
		display := it.Display
		switch {
		case onCursor:
			display = CursorStyle.Render(display)
		case !p.focused:
			display = DimStyle.Render(display)
		}
		pos := ""
		if it.Position > 0 {
			pos = "  " + PositionStyle.Render(fmt.Sprintf("#%d", it.Position))
		}
		b.WriteString(cursor + "  " + p.checkbox(marker, state) + " " + display + pos + "\n")
	}

	if hasBelow {
		b.WriteString(DimStyle.Render("  ↓ more") + "\n")
	}
	return ContentPaneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func triMarker(s selection.TriState) string {
	switch s {
	case selection.Full:
		return "[x]"
	case selection.Partial:
		return "[-]"
	default:
		return "[ ]"
	}
}

func (p Picker) checkbox(marker string, s selection.TriState) string {
	if !p.focused {
		return DimStyle.Render(marker)
	}
	switch s {
	case selection.Full:
		return SelectedStyle.Render(marker)
	case selection.Partial:
		return PartialStyle.Render(marker)
	default:
		return UnselectedStyle.Render(marker)
	}
}

// --- Internal helpers ---

func (p Picker) isSkippable(r int) bool {
	if r < 0 || r >= len(p.rows) {
		return true
	}
	return p.items[p.rows[r]].Description != ""
}

func (p Picker) firstFocusable() int {
	for r := range p.rows {
		if !p.isSkippable(r) {
			return r
		}
	}
	return 0
}

// moveCursor moves by delta rows, skipping descriptions, and clamps to the
// list.
func (p *Picker) moveCursor(delta int) {
	if len(p.rows) == 0 {
		return
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	next := p.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(p.rows)-1 {
		next = len(p.rows) - 1
	}
	for next >= 0 && next < len(p.rows) && p.isSkippable(next) {
		next += dir
	}
	if next < 0 || next >= len(p.rows) {
		return
	}
	p.cursor = next
	p.clampScroll()
}

// clampScroll keeps the cursor within the visible window.
func (p *Picker) clampScroll() {
	if p.height <= 0 {
		return
	}
	effectiveHeight := p.height
	if len(p.rows) > p.height {
		effectiveHeight -= 2
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+effectiveHeight {
		p.offset = p.cursor - effectiveHeight + 1
	}
	maxOffset := len(p.rows) - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
}
