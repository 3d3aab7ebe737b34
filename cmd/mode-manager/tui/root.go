package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/session"
	"github.com/ruminaider/mode-manager/internal/stacks"
)

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone  overlayContext = iota
	overlayApply                // write the selection to .roomodes
	overlayReset                // discard changes since the last commit
	overlayQuit                 // quit with uncommitted changes
)

// Model is the root bubbletea model that composes all TUI child components.
// Every selection change goes through the session controller; the children
// only render what the controller's view says.
type Model struct {
	ctx       context.Context
	ctrl      *session.Controller
	workspace string
	changes   <-chan stacks.Change

	// Layout components.
	tabBar    TabBar
	sidebar   Sidebar
	picker    Picker
	order     OrderPane
	search    Search
	statusBar StatusBar
	overlay   Overlay

	overlayCtx overlayContext

	// State.
	focusZone     FocusZone
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
	notice        string
	noticeErr     bool

	// Committed is set once a selection has been written during the session.
	Committed bool
}

// NewModel creates the root TUI model over an opened environment. The
// environment's controller must already have loaded its catalog.
func NewModel(ctx context.Context, env *commands.Env) Model {
	locales := env.Source.Available()
	if len(locales) == 0 {
		locales = stacks.Locales()
	}
	ctrl := env.Controller
	v := ctrl.Store().View()

	m := Model{
		ctx:       ctx,
		ctrl:      ctrl,
		workspace: env.Workspace.Path,
		tabBar:    NewTabBar(locales, ctrl.Locale()),
		sidebar:   NewSidebar(SidebarEntries(v)),
		order:     NewOrderPane(v),
		search:    NewSearch(),
		statusBar: NewStatusBar(),
		focusZone: FocusSidebar,
	}
	m.picker = NewPicker(m.currentItems())
	m.syncStatusBar()
	return m
}

// WithChanges makes the model reload the installed catalog whenever a
// change for its locale arrives on ch.
func (m Model) WithChanges(ch <-chan stacks.Change) Model {
	m.changes = ch
	return m
}

// Dirty reports whether there are uncommitted changes.
func (m Model) Dirty() bool {
	return m.ctrl.Dirty()
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

// loadCatalog fetches the catalog for t off the event loop.
func loadCatalog(ctx context.Context, ctrl *session.Controller, t session.Ticket) tea.Cmd {
	return func() tea.Msg {
		text, err := ctrl.Fetch(ctx, t)
		return CatalogLoadedMsg{Ticket: t, Text: text, Err: err}
	}
}

// waitForChange blocks for the next catalog change.
func waitForChange(ch <-chan stacks.Change) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return CatalogChangedMsg{Locale: c.Locale}
	}
}

// Update satisfies tea.Model. Routes messages to the correct child component.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg), nil

	case CatalogChangedMsg:
		var cmd tea.Cmd
		if msg.Locale == m.ctrl.Locale() && m.tabBar.PendingLocale() == "" {
			m, cmd = m.startLoad(msg.Locale)
		}
		return m, tea.Batch(cmd, waitForChange(m.changes))

	case watchClosedMsg:
		m.changes = nil
		return m, nil

	case LocaleSwitchMsg:
		return m.startLoad(msg.Locale)

	case FrameworkSwitchMsg:
		m.search.Close(true)
		m.picker.SetFilter("")
		m.picker.SetItems(m.currentItems())
		return m, nil

	case FocusChangeMsg:
		m.focusZone = msg.Zone
		m.syncStatusBar()
		return m, nil

	case ToggleEntryMsg:
		return m.apply(session.SelectOne{Slug: msg.Slug, Selected: msg.Selected}), nil

	case SelectManyMsg:
		return m.apply(session.SelectMany{Slugs: msg.Slugs, Selected: msg.Selected}), nil

	case ToggleSubgroupMsg:
		m.ctrl.ToggleSubgroup(msg.ID)
		m.refresh()
		return m, nil

	case ReorderMsg:
		m = m.apply(session.Reorder{MovedID: msg.MovedID, TargetID: msg.TargetID})
		m.order.Select(msg.MovedID)
		return m, nil
	}

	// When overlay is active, route ALL messages to the overlay.
	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}
	if m.search.Active() {
		return m.updateSearch(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+s":
			if !m.ctrl.Dirty() {
				m.setNotice("nothing to apply", false)
				return m, nil
			}
			m.openOverlay(overlayApply, NewConfirmOverlay("Apply",
				fmt.Sprintf("Write %d mode(s) to %s?", m.ctrl.Store().Len(), m.workspace), "Apply"))
			return m, nil
		case "ctrl+r":
			if m.ctrl.Dirty() {
				m.openOverlay(overlayReset, NewConfirmOverlay("Reset",
					"Discard changes since the last apply?", "Reset"))
			}
			return m, nil
		case "tab", "shift+tab":
			var cmd tea.Cmd
			m.tabBar, cmd = m.tabBar.Update(msg)
			return m, cmd
		case "/":
			if m.focusZone != FocusOrder {
				m.focusZone = FocusContent
				m.syncStatusBar()
				cmd := m.search.Open()
				return m, cmd
			}
		case "q":
			return m.requestQuit()
		case "esc":
			if m.focusZone == FocusSidebar {
				return m.requestQuit()
			}
			if m.focusZone == FocusContent && m.picker.Filter() != "" {
				m.search.Close(true)
				m.picker.SetFilter("")
				return m, nil
			}
		}
	}

	// Focus-based routing.
	var cmd tea.Cmd
	switch m.focusZone {
	case FocusSidebar:
		m.sidebar, cmd = m.sidebar.Update(msg)
	case FocusContent:
		m.picker, cmd = m.picker.Update(msg)
	case FocusOrder:
		m.order, cmd = m.order.Update(msg)
	}
	return m, cmd
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	m.sidebar.SetFocused(m.focusZone == FocusSidebar)
	m.picker.SetFocused(m.focusZone == FocusContent)
	m.order.SetFocused(m.focusZone == FocusOrder)

	contentWidth := m.contentWidth()
	helper := m.search.View()
	if helper == "" {
		helper = DimStyle.Render(m.frameworkHint())
	}
	content := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.NewStyle().MaxHeight(1).Render(ContentPaneStyle.Render(helper)) + "\n" +
			clampHeight(m.picker.View(), m.mainHeight()-1))

	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), content, m.order.View())
	frame := m.tabBar.View() + "\n" + mainArea + "\n" + m.statusBar.View()

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// --- Update helpers ---

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	// When the overlay just closed, handle its result directly instead of
	// sending it through the event loop.
	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg := extractOverlayClose(cmd); closeMsg != nil {
			return m.handleOverlayClose(*closeMsg)
		}
	}
	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone
	if !msg.Confirmed {
		return m, nil
	}

	switch ctx {
	case overlayApply:
		out, err := m.ctrl.Commit(m.ctx)
		if err != nil {
			m.setNotice(err.Error(), true)
			return m, nil
		}
		m.Committed = true
		m.setNotice(fmt.Sprintf("wrote %d mode(s)", len(out)), false)
	case overlayReset:
		m.ctrl.Cancel()
		m.refresh()
		m.setNotice("changes discarded", false)
	case overlayQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.picker.SetFilter(m.search.Value())
	return m, cmd
}

func (m Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.ctrl.Dirty() {
		m.openOverlay(overlayQuit, NewConfirmOverlay("Quit", "Discard changes and exit?", "Quit"))
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) openOverlay(ctx overlayContext, o Overlay) {
	m.overlay = o
	m.overlayCtx = ctx
}

// startLoad issues a ticket for locale and fetches it asynchronously. The
// installed catalog stays in place until the result arrives.
func (m Model) startLoad(locale string) (Model, tea.Cmd) {
	t := m.ctrl.BeginLoad(locale)
	m.tabBar.SetPending(locale)
	m.syncStatusBar()
	return m, loadCatalog(m.ctx, m.ctrl, t)
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) Model {
	if !m.ctrl.CompleteLoad(msg.Ticket, msg.Text, msg.Err) {
		return m
	}
	if msg.Err != nil {
		m.tabBar.ClearPending()
		m.setNotice(fmt.Sprintf("loading %s: %v", msg.Ticket.Locale, msg.Err), true)
		return m
	}
	m.tabBar.SetActive(m.ctrl.Locale())
	m.notice = ""
	v := m.ctrl.Store().View()
	m.sidebar.SetEntries(SidebarEntries(v))
	m.picker.SetItems(m.currentItems())
	m.order.SetView(v)
	m.syncStatusBar()
	return m
}

// apply routes a selection event through the controller and redraws.
func (m Model) apply(ev session.Event) Model {
	if err := m.ctrl.Handle(m.ctx, ev); err != nil {
		m.setNotice(err.Error(), true)
	}
	m.refresh()
	return m
}

// refresh redraws every pane from the controller's current view, keeping
// cursors where they were.
func (m *Model) refresh() {
	v := m.ctrl.Store().View()
	m.sidebar.SetEntries(SidebarEntries(v))
	m.picker.Refresh(m.currentItems())
	m.order.SetView(v)
	m.syncStatusBar()
}

func (m Model) currentFramework() (catalog.Framework, bool) {
	fws := m.ctrl.Store().View().Catalog.AllFrameworks()
	i := m.sidebar.Active()
	if i < 0 || i >= len(fws) {
		return catalog.Framework{}, false
	}
	return fws[i], true
}

func (m Model) currentItems() []PickerItem {
	fw, ok := m.currentFramework()
	if !ok {
		return nil
	}
	return FrameworkPickerItems(fw, m.ctrl.Store().View())
}

func (m Model) frameworkHint() string {
	fw, ok := m.currentFramework()
	if !ok {
		return "No catalog loaded."
	}
	if fw.Description != "" {
		return fw.Description
	}
	return frameworkTitle(fw)
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
	m.syncStatusBar()
}

// --- Size distribution ---

func (m Model) mainHeight() int {
	return max(m.height-2, 1) // tab bar and status bar
}

func (m Model) contentWidth() int {
	return max(m.width-SidebarWidth-OrderWidth-2, 10) // two pane borders
}

func (m *Model) distributeSize() {
	mainHeight := m.mainHeight()
	m.tabBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.sidebar.SetHeight(mainHeight)
	m.order.SetHeight(mainHeight)
	m.picker.SetHeight(mainHeight - 1) // search or hint line
	m.picker.SetWidth(m.contentWidth())
	m.search.SetWidth(m.contentWidth())
}

func clampHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// --- Sync helpers ---

func (m *Model) syncStatusBar() {
	v := m.ctrl.Store().View()
	m.statusBar.Update(StatusSummary{
		Selected: len(v.Ordered),
		Total:    v.Catalog.EntryCount(),
		Locale:   m.ctrl.Locale(),
		State:    m.ctrl.LoadState(),
		Dirty:    m.ctrl.Dirty(),
		Notice:   m.notice,
		IsError:  m.noticeErr,
	}, m.focusZone)
}

// --- Message extraction helpers ---
// These run a tea.Cmd synchronously to extract the message it produces.
// This is safe because overlay commands are simple closures returning a message.

func extractOverlayClose(cmd tea.Cmd) *OverlayCloseMsg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if m, ok := msg.(OverlayCloseMsg); ok {
		return &m
	}
	return nil
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
