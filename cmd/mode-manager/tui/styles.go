package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// SidebarWidth is the fixed width of the framework navigation pane.
const SidebarWidth = 26

// OrderWidth is the fixed width of the selection order pane.
const OrderWidth = 30

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Tab bar styles.
var (
	// ActiveTabStyle is used for the locale whose catalog is shown.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1).
			Bold(true)

	// InactiveTabStyle is used for the other locales.
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)

	// PendingTabStyle is used for a locale whose catalog is loading.
	PendingTabStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorYellow).
			Padding(0, 1)

	// TabBarStyle is the background strip for the tab bar row.
	TabBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 1)
)

// Sidebar styles.
var (
	ActiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Background(colorSurface1).
				Bold(true).
				PaddingLeft(1)

	InactiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorText).
				PaddingLeft(1)

	DimActiveSidebarStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Background(colorSurface0).
				PaddingLeft(1)

	DimSidebarStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			PaddingLeft(1)

	// SidebarContainerStyle wraps the sidebar column.
	SidebarContainerStyle = lipgloss.NewStyle().
				Width(SidebarWidth).
				BorderRight(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSurface1)

	// OrderContainerStyle wraps the order column.
	OrderContainerStyle = lipgloss.NewStyle().
				Width(OrderWidth).
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSurface1)
)

// Content pane styles.
var (
	// HeaderStyle is used for subgroup headers.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// PartialStyle is used for partially selected subgroups.
	PartialStyle = lipgloss.NewStyle().
			Foreground(colorPeach)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	PositionStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// SearchPromptStyle is used for the "/" prompt above the picker.
	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusBarDirtyStyle marks uncommitted changes.
	StatusBarDirtyStyle = lipgloss.NewStyle().
				Foreground(colorPeach).
				Background(colorSurface0).
				Bold(true)

	// StatusBarErrorStyle is used for load and commit errors.
	StatusBarErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0)
)

// Overlay styles.
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)
)
