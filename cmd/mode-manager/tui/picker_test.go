package tui

import (
	"testing"

	"github.com/ruminaider/mode-manager/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func reactItems(slugs ...string) []PickerItem {
	v := testView(slugs...)
	return FrameworkPickerItems(v.Catalog.Frameworks[0], v)
}

func TestFrameworkPickerItems(t *testing.T) {
	v := testView("scout")
	items := FrameworkPickerItems(v.Catalog.GeneralPurpose, v)

	// header + description + 2 entries
	require.Len(t, items, 4)
	assert.True(t, items[0].IsHeader)
	assert.Equal(t, "1.1 Core", items[0].Display)
	assert.Equal(t, selection.Partial, items[0].State)
	assert.False(t, items[0].Selected)

	assert.Equal(t, "Coordination modes.", items[1].Description)

	assert.Equal(t, "navigator", items[2].Slug)
	assert.Equal(t, "🧭 Navigator", items[2].Display)
	assert.False(t, items[2].Selected)
	assert.Equal(t, 0, items[2].Position)

	assert.Equal(t, "scout", items[3].Slug)
	assert.True(t, items[3].Selected)
	assert.Equal(t, 1, items[3].Position)
}

func TestFrameworkPickerItems_FullSubgroup(t *testing.T) {
	items := reactItems("react-hooks", "react-state")
	require.Len(t, items, 5) // two headers, three entries
	assert.Equal(t, selection.Full, items[0].State)
	assert.True(t, items[0].Selected)
	assert.Equal(t, selection.Unselected, items[3].State)
}

func TestPickerCounts(t *testing.T) {
	p := NewPicker(reactItems("jest"))
	assert.Equal(t, 3, p.TotalCount())
	assert.Equal(t, 1, p.SelectedCount())
}

func TestPickerCursorStartsOnHeader(t *testing.T) {
	p := NewPicker(reactItems())
	assert.Equal(t, "framework-0/subgroup-0", p.CurrentKey())
}

func TestPickerSkipsDescriptions(t *testing.T) {
	v := testView()
	p := NewPicker(FrameworkPickerItems(v.Catalog.GeneralPurpose, v))
	p.SetFocused(true)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	it, ok := p.current()
	require.True(t, ok)
	assert.Equal(t, "navigator", it.Slug)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	it, _ = p.current()
	assert.True(t, it.IsHeader)
}

func TestPickerToggleEmitsMessages(t *testing.T) {
	p := NewPicker(reactItems("react-state"))

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleSubgroupMsg{ID: "framework-0/subgroup-0"}, cmd())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleEntryMsg{Slug: "react-hooks", Selected: true}, cmd())

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = p.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleEntryMsg{Slug: "react-state", Selected: false}, cmd())
}

func TestPickerSelectAllAndNone(t *testing.T) {
	p := NewPicker(reactItems())

	_, cmd := p.Update(runes("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectManyMsg{Slugs: []string{"react-hooks", "react-state", "jest"}, Selected: true}, cmd())

	_, cmd = p.Update(runes("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectManyMsg{Slugs: []string{"react-hooks", "react-state", "jest"}, Selected: false}, cmd())
}

func TestPickerFocusMessages(t *testing.T) {
	p := NewPicker(reactItems())

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, FocusChangeMsg{Zone: FocusSidebar}, cmd())

	_, cmd = p.Update(runes("o"))
	require.NotNil(t, cmd)
	assert.Equal(t, FocusChangeMsg{Zone: FocusOrder}, cmd())
}

func TestPickerFilter(t *testing.T) {
	p := NewPicker(reactItems())

	p.SetFilter("jest")
	assert.Equal(t, "jest", p.Filter())
	assert.Equal(t, []string{"jest"}, p.VisibleSlugs())
	require.Len(t, p.rows, 2, "matching mode and its header")
	assert.Equal(t, "framework-0/subgroup-1", p.CurrentKey())

	p.SetFilter("zzz")
	assert.Empty(t, p.VisibleSlugs())
	assert.Contains(t, p.View(), "no matches")

	p.SetFilter("")
	assert.Equal(t, []string{"react-hooks", "react-state", "jest"}, p.VisibleSlugs())
}

func TestPickerFilterLimitsSelectAll(t *testing.T) {
	p := NewPicker(reactItems())
	p.SetFilter("state")

	_, cmd := p.Update(runes("a"))
	require.NotNil(t, cmd)
	assert.Equal(t, SelectManyMsg{Slugs: []string{"react-state"}, Selected: true}, cmd())
}

func TestPickerRefreshKeepsCursor(t *testing.T) {
	p := NewPicker(reactItems())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "mode-framework-0-subgroup-0-1", p.CurrentKey())

	p.Refresh(reactItems("react-state"))
	assert.Equal(t, "mode-framework-0-subgroup-0-1", p.CurrentKey())
	it, _ := p.current()
	assert.True(t, it.Selected)

	p.SetItems(reactItems())
	assert.Equal(t, "framework-0/subgroup-0", p.CurrentKey(), "SetItems resets the cursor")
}

func TestPickerScroll(t *testing.T) {
	p := NewPicker(reactItems())
	p.SetHeight(3)
	for i := 0; i < 4; i++ {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, "mode-framework-0-subgroup-1-0", p.CurrentKey())
	assert.Greater(t, p.offset, 0)
	assert.Contains(t, p.View(), "↑ more")
}

func TestPickerViewMarkers(t *testing.T) {
	p := NewPicker(reactItems("react-hooks"))
	p.SetFocused(true)
	out := p.View()
	assert.Contains(t, out, "[-]")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "> ")
}

func TestPickerEmpty(t *testing.T) {
	p := NewPicker(nil)
	assert.Equal(t, "", p.CurrentKey())
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Nil(t, cmd)
	assert.Contains(t, p.View(), "no modes")
}
