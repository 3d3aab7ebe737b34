// Package selection owns the ordered list of selected slugs and the views
// derived from it for a catalog.
package selection

import (
	"errors"
	"slices"

	"github.com/ruminaider/mode-manager/internal/catalog"
)

// ErrNotPermutation is returned by ReplaceOrder when the new order does not
// contain exactly the currently selected slugs.
var ErrNotPermutation = errors.New("order is not a permutation of the selection")

// Listener receives the new view after a change.
type Listener func(View)

type subscription struct {
	id int
	fn Listener
}

// Store is the single source of truth for a selection. It is not safe for
// concurrent use; callers serialize mutations.
type Store struct {
	slugs []string
	cat   catalog.Catalog
	view  View

	recomputations int
	listeners      []subscription
	nextID         int
}

// NewStore creates a store over cat with an initial selection. Empty and
// duplicate slugs are dropped, keeping the first occurrence.
func NewStore(cat catalog.Catalog, slugs []string) *Store {
	s := &Store{
		slugs: dedupe(slugs),
		cat:   cat,
	}
	s.recompute()
	return s
}

func dedupe(slugs []string) []string {
	seen := make(map[string]bool, len(slugs))
	out := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, slug)
	}
	return out
}

// Slugs returns a copy of the ordered selection.
func (s *Store) Slugs() []string {
	return slices.Clone(s.slugs)
}

// Catalog returns the catalog the store derives views from.
func (s *Store) Catalog() catalog.Catalog { return s.cat }

// View returns the current derived view.
func (s *Store) View() View { return s.view }

func (s *Store) Len() int { return len(s.slugs) }

// Recomputations counts derivation passes since the store was created,
// including the initial one.
func (s *Store) Recomputations() int { return s.recomputations }

func (s *Store) IsSelected(slug string) bool {
	return slices.Contains(s.slugs, slug)
}

// SetSelected appends slug when selecting and removes it when deselecting.
// Selecting a slug that is already selected leaves the order untouched.
func (s *Store) SetSelected(slug string, selected bool) {
	s.SetBatchSelected([]string{slug}, selected)
}

// SetBatchSelected applies SetSelected to every slug and recomputes once.
func (s *Store) SetBatchSelected(slugs []string, selected bool) {
	var next []string
	if selected {
		next = dedupe(append(slices.Clone(s.slugs), slugs...))
	} else {
		drop := make(map[string]bool, len(slugs))
		for _, slug := range slugs {
			drop[slug] = true
		}
		next = slices.DeleteFunc(slices.Clone(s.slugs), func(slug string) bool {
			return drop[slug]
		})
	}
	s.replace(next)
}

// ReplaceOrder installs a new order for the same set of slugs. Anything
// other than a permutation of the current selection is rejected and the
// store is left unchanged.
func (s *Store) ReplaceOrder(slugs []string) error {
	if !isPermutation(s.slugs, slugs) {
		return ErrNotPermutation
	}
	s.replace(slices.Clone(slugs))
	return nil
}

func isPermutation(cur, next []string) bool {
	if len(cur) != len(next) {
		return false
	}
	want := make(map[string]bool, len(cur))
	for _, slug := range cur {
		want[slug] = true
	}
	for _, slug := range next {
		if !want[slug] {
			return false
		}
		// Each slug may be consumed once; repeats fail the next lookup.
		delete(want, slug)
	}
	return true
}

// Reset replaces the selection wholesale.
func (s *Store) Reset(slugs []string) {
	s.replace(dedupe(slugs))
}

// SetCatalog swaps the catalog. The selection is kept as is: slugs missing
// from the new catalog stay selected and show up in View().Hidden until a
// catalog that contains them returns.
func (s *Store) SetCatalog(cat catalog.Catalog) {
	s.cat = cat
	s.recompute()
}

func (s *Store) replace(next []string) {
	if slices.Equal(next, s.slugs) {
		return
	}
	s.slugs = next
	s.recompute()
}

func (s *Store) recompute() {
	v := Derive(s.cat, s.slugs)
	s.recomputations++
	if v.Equal(s.view) {
		return
	}
	s.view = v
	for _, sub := range slices.Clone(s.listeners) {
		sub.fn(v)
	}
}

// Subscribe registers fn to be called synchronously whenever the derived view
// changes by value. The returned func removes the listener.
func (s *Store) Subscribe(fn Listener) func() {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool {
			return sub.id == id
		})
	}
}
