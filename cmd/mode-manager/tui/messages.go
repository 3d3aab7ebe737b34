package tui

import "github.com/ruminaider/mode-manager/internal/session"

// FocusZone identifies which component currently has keyboard focus.
type FocusZone int

const (
	FocusSidebar FocusZone = iota // Framework navigation
	FocusContent                  // Subgroups and modes of one framework
	FocusOrder                    // Selected modes in commit order
)

// --- Inter-component messages ---

// LocaleSwitchMsg is sent when the user picks a different locale tab.
type LocaleSwitchMsg struct{ Locale string }

// FrameworkSwitchMsg is sent when the sidebar cursor moves.
type FrameworkSwitchMsg struct{ Index int }

// FocusChangeMsg requests a focus zone transition.
type FocusChangeMsg struct{ Zone FocusZone }

// ToggleEntryMsg asks to select or deselect one mode.
type ToggleEntryMsg struct {
	Slug     string
	Selected bool
}

// ToggleSubgroupMsg asks to toggle a whole subgroup.
type ToggleSubgroupMsg struct{ ID string }

// SelectManyMsg asks to select or deselect several modes at once.
type SelectManyMsg struct {
	Slugs    []string
	Selected bool
}

// ReorderMsg asks to move one selected mode to the position of another.
type ReorderMsg struct{ MovedID, TargetID string }

// OverlayCloseMsg is emitted when an overlay is dismissed.
type OverlayCloseMsg struct {
	Confirmed bool // true = OK, false = Cancel/Esc
}

// CatalogLoadedMsg delivers the result of an asynchronous catalog fetch.
type CatalogLoadedMsg struct {
	Ticket session.Ticket
	Text   string
	Err    error
}

// CatalogChangedMsg reports that a catalog file changed on disk.
type CatalogChangedMsg struct{ Locale string }

// watchClosedMsg is sent once the change channel is closed.
type watchClosedMsg struct{}
