package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// Overlay is a centered Yes/No confirmation drawn over the screen.
type Overlay struct {
	title   string
	message string
	ok      string
	cursor  int // 0=Cancel, 1=OK
	active  bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message, ok string) Overlay {
	if ok == "" {
		ok = "OK"
	}
	return Overlay{
		title:   title,
		message: message,
		ok:      ok,
		cursor:  1, // default to OK
		active:  true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "y":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: true}
			}
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor
		case "enter":
			o.active = false
			confirmed := o.cursor == 1
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: confirmed}
			}
		}
	}
	return o, nil
}

// View renders the overlay box. Compositing over a background is done by
// Composite.
func (o Overlay) View() string {
	if !o.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.message)
	b.WriteString("\n\n")

	cancelBtn := OverlayButtonInactiveStyle.Render("Cancel")
	okBtn := OverlayButtonActiveStyle.Render(o.ok)
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render("Cancel")
		okBtn = OverlayButtonInactiveStyle.Render(o.ok)
	}
	b.WriteString(cancelBtn + "  " + okBtn)
	return OverlayStyle.Render(b.String())
}

// Composite places the overlay box centered on top of the background string.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		overlayWidth = max(overlayWidth, ansi.StringWidth(line))
	}

	startRow := max((totalHeight-len(overlayLines))/2, 0)
	startCol := max((totalWidth-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bgLine := bgLines[row]
		bgWidth := ansi.StringWidth(bgLine)

		left := ansi.Truncate(bgLine, startCol, "")
		if bgWidth < startCol {
			left += strings.Repeat(" ", startCol-bgWidth)
		}
		right := ""
		if end := startCol + ansi.StringWidth(overlayLine); end < bgWidth {
			right = ansi.TruncateLeft(bgLine, end, "")
		}
		bgLines[row] = left + overlayLine + right
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}

