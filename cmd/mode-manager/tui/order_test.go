package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"
)

func TestOrderPaneMove(t *testing.T) {
	v := testView("scout", "navigator", "jest")
	o := NewOrderPane(v)
	require.Equal(t, 3, o.Len())
	assert.Equal(t, v.Ordered[0].ID, o.CurrentID())

	// Already first: nothing to do.
	_, cmd := o.Update(runes("K"))
	assert.Nil(t, cmd)

	_, cmd = o.Update(runes("J"))
	require.NotNil(t, cmd)
	assert.Equal(t, ReorderMsg{MovedID: v.Ordered[0].ID, TargetID: v.Ordered[1].ID}, cmd())

	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd = o.Update(tea.KeyMsg{Type: tea.KeyShiftUp})
	require.NotNil(t, cmd)
	assert.Equal(t, ReorderMsg{MovedID: v.Ordered[2].ID, TargetID: v.Ordered[1].ID}, cmd())

	_, cmd = o.Update(runes("J"))
	assert.Nil(t, cmd, "already last")
}

func TestOrderPaneRemove(t *testing.T) {
	o := NewOrderPane(testView("scout", "jest"))
	o, _ = o.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := o.Update(runes("x"))
	require.NotNil(t, cmd)
	assert.Equal(t, ToggleEntryMsg{Slug: "jest", Selected: false}, cmd())
}

func TestOrderPaneSetViewFollowsEntry(t *testing.T) {
	v := testView("scout", "navigator")
	o := NewOrderPane(v)
	scoutID := v.Ordered[0].ID

	o.SetView(testView("navigator", "scout"))
	assert.Equal(t, scoutID, o.CurrentID())

	o.SetView(testView("navigator"))
	assert.Equal(t, v.Ordered[1].ID, o.CurrentID(), "cursor is clamped when its entry is gone")

	o.SetView(testView())
	assert.Equal(t, "", o.CurrentID())
	_, cmd := o.Update(runes("x"))
	assert.Nil(t, cmd)
}

func TestOrderPaneView(t *testing.T) {
	o := NewOrderPane(testView("scout", "gone", "jest"))
	o.SetHeight(8)
	out := o.View()
	assert.Contains(t, out, "Order (2)")
	assert.Contains(t, out, " 1. Scout")
	assert.Contains(t, out, " 2. Jest Runner")
	assert.Contains(t, out, "+1 not in this catalog")

	empty := NewOrderPane(testView())
	empty.SetHeight(4)
	assert.Contains(t, empty.View(), "nothing selected")
}

func TestOrderPaneBack(t *testing.T) {
	o := NewOrderPane(testView())
	_, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, FocusChangeMsg{Zone: FocusContent}, cmd())
}
