// Package session drives a selection store from UI events: it loads catalogs,
// applies selection and reorder requests, and commits the result.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/logging"
	"github.com/ruminaider/mode-manager/internal/ordering"
	"github.com/ruminaider/mode-manager/internal/selection"
)

var (
	// ErrNoSink is returned by Commit when the controller has no sink.
	ErrNoSink = errors.New("no selection sink configured")
	// ErrNoSource is returned by Load when the controller has no catalog source.
	ErrNoSource = errors.New("no catalog source configured")
)

// CatalogSource fetches the raw catalog text for a locale.
type CatalogSource interface {
	Catalog(ctx context.Context, locale string) (string, error)
}

// OrderedSlug is one committed selection item.
type OrderedSlug struct {
	Slug  string `json:"slug"`
	Order int    `json:"order"`
}

// SelectionSink receives the committed selection.
type SelectionSink interface {
	Apply(ctx context.Context, selection []OrderedSlug) error
}

// PersistedSelection supplies the previously committed selection.
type PersistedSelection interface {
	Load(ctx context.Context) ([]string, error)
}

// LoadState tracks the catalog fetch lifecycle.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Ticket identifies one catalog load. Only the most recently issued ticket
// can complete.
type Ticket struct {
	gen    uint64
	Locale string
}

// Controller owns a selection store and the committed baseline it is
// compared against. Like the store, it expects serialized calls.
type Controller struct {
	source    CatalogSource
	sink      SelectionSink
	persisted PersistedSelection
	parser    catalog.Parser
	log       *slog.Logger

	store    *selection.Store
	baseline []string
	inited   bool

	gen     uint64
	state   LoadState
	loadErr error
	locale  string
}

// Option configures a Controller.
type Option func(*Controller)

// WithParser sets the parser used for loaded catalog text.
func WithParser(p catalog.Parser) Option {
	return func(c *Controller) { c.parser = p }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a controller over an empty catalog and selection. Any
// collaborator may be nil; the operations that need it then fail.
func New(source CatalogSource, sink SelectionSink, persisted PersistedSelection, opts ...Option) *Controller {
	c := &Controller{
		source:    source,
		sink:      sink,
		persisted: persisted,
		log:       logging.Discard(),
		store:     selection.NewStore(catalog.Empty(), nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the underlying selection store.
func (c *Controller) Store() *selection.Store { return c.store }

// Init loads the persisted selection and makes it the committed baseline. It
// runs once; later calls do nothing. A load error leaves the selection empty
// and is returned.
func (c *Controller) Init(ctx context.Context) error {
	if c.inited {
		return nil
	}
	c.inited = true
	if c.persisted == nil {
		return nil
	}

	slugs, err := c.persisted.Load(ctx)
	if err != nil {
		c.log.Warn("loading persisted selection", "error", err)
		c.store.Reset(nil)
		c.baseline = nil
		return fmt.Errorf("loading persisted selection: %w", err)
	}
	c.store.Reset(slugs)
	c.baseline = c.store.Slugs()
	c.log.Debug("persisted selection loaded", "count", len(c.baseline))
	return nil
}

// Handle applies one event.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case SelectOne:
		c.store.SetSelected(e.Slug, e.Selected)
	case SelectMany:
		c.store.SetBatchSelected(e.Slugs, e.Selected)
	case Reorder:
		c.reorder(e.MovedID, e.TargetID)
	case RequestCatalog:
		return c.Load(ctx, e.Locale)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	return nil
}

func entryID(e catalog.Entry) string { return e.ID }

// reorder moves within the display sequence and writes the result back into
// the slots the visible slugs occupy. Hidden slugs keep their positions.
func (c *Controller) reorder(movedID, targetID string) {
	seq := c.store.View().Ordered
	next := ordering.MoveBefore(seq, entryID, movedID, targetID)
	if len(next) == 0 || &next[0] == &seq[0] {
		c.log.Debug("reorder ignored", "moved", movedID, "target", targetID)
		return
	}

	visible := make(map[string]bool, len(next))
	for _, e := range next {
		visible[e.Slug] = true
	}
	slugs := c.store.Slugs()
	i := 0
	for pos, slug := range slugs {
		if visible[slug] {
			slugs[pos] = next[i].Slug
			i++
		}
	}
	if err := c.store.ReplaceOrder(slugs); err != nil {
		c.log.Warn("reorder rejected", "error", err)
	}
}

// ToggleSubgroup selects every entry of a subgroup, or deselects them all
// when the subgroup is already fully selected. It reports whether the
// subgroup exists and has entries.
func (c *Controller) ToggleSubgroup(subgroupID string) bool {
	v := c.store.View()
	slugs := v.Catalog.SubgroupSlugs(subgroupID)
	if len(slugs) == 0 {
		return false
	}
	c.store.SetBatchSelected(slugs, v.State(subgroupID) != selection.Full)
	return true
}

// BeginLoad issues a ticket for a new catalog load and supersedes any load
// in flight.
func (c *Controller) BeginLoad(locale string) Ticket {
	c.gen++
	c.state = Loading
	c.log.Debug("catalog load started", "locale", locale, "generation", c.gen)
	return Ticket{gen: c.gen, Locale: locale}
}

// CompleteLoad delivers the result of a load. Results for superseded tickets
// are dropped and false is returned. A failed load keeps the current
// catalog and selection.
func (c *Controller) CompleteLoad(t Ticket, text string, err error) bool {
	if t.gen != c.gen || c.state != Loading {
		c.log.Debug("stale catalog load discarded", "locale", t.Locale, "generation", t.gen, "latest", c.gen)
		return false
	}
	if err != nil {
		c.state = Failed
		c.loadErr = err
		c.log.Warn("catalog load failed", "locale", t.Locale, "error", err)
		return true
	}
	cat := c.parser.Parse(text)
	c.store.SetCatalog(cat)
	c.state = Ready
	c.loadErr = nil
	c.locale = t.Locale
	c.log.Info("catalog loaded", "locale", t.Locale, "entries", cat.EntryCount())
	return true
}

// Load fetches and installs the catalog for locale synchronously.
func (c *Controller) Load(ctx context.Context, locale string) error {
	if c.source == nil {
		return ErrNoSource
	}
	t := c.BeginLoad(locale)
	text, err := c.source.Catalog(ctx, locale)
	c.CompleteLoad(t, text, err)
	if err != nil {
		return fmt.Errorf("loading catalog %q: %w", locale, err)
	}
	return nil
}

// Fetch runs the source for a ticket without touching controller state, so
// it can run off the event loop. Deliver the result with CompleteLoad.
func (c *Controller) Fetch(ctx context.Context, t Ticket) (string, error) {
	if c.source == nil {
		return "", ErrNoSource
	}
	return c.source.Catalog(ctx, t.Locale)
}

func (c *Controller) LoadState() LoadState { return c.state }

// LoadErr is the error of the last failed load, or nil.
func (c *Controller) LoadErr() error { return c.loadErr }

// Locale is the locale of the catalog currently installed.
func (c *Controller) Locale() string { return c.locale }

// Baseline returns the last committed selection.
func (c *Controller) Baseline() []string { return slices.Clone(c.baseline) }

// Dirty reports whether the selection differs from the baseline, order
// included.
func (c *Controller) Dirty() bool {
	return !slices.Equal(c.store.Slugs(), c.baseline)
}

// Commit sends the current selection to the sink. On success it becomes the
// new baseline.
func (c *Controller) Commit(ctx context.Context) ([]OrderedSlug, error) {
	if c.sink == nil {
		return nil, ErrNoSink
	}
	slugs := c.store.Slugs()
	out := make([]OrderedSlug, len(slugs))
	for i, slug := range slugs {
		out[i] = OrderedSlug{Slug: slug, Order: i}
	}
	if err := c.sink.Apply(ctx, out); err != nil {
		c.log.Error("commit failed", "error", err)
		return nil, fmt.Errorf("applying selection: %w", err)
	}
	c.baseline = slugs
	c.log.Info("selection committed", "count", len(out))
	return out, nil
}

// Cancel discards uncommitted changes.
func (c *Controller) Cancel() {
	c.store.Reset(c.baseline)
	c.log.Debug("selection reset to baseline", "count", len(c.baseline))
}
