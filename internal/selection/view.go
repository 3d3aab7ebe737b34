package selection

import (
	"reflect"
	"slices"

	"github.com/ruminaider/mode-manager/internal/catalog"
)

// TriState is the selection state of a subgroup.
type TriState int

const (
	Unselected TriState = iota
	Partial
	Full
)

func (t TriState) String() string {
	switch t {
	case Partial:
		return "partial"
	case Full:
		return "full"
	default:
		return "unselected"
	}
}

// triStateOf applies the subgroup rule. An empty subgroup is never Full.
func triStateOf(count, n int) TriState {
	switch {
	case n > 0 && count == n:
		return Full
	case count > 0:
		return Partial
	}
	return Unselected
}

// View is the projection of a selection onto a catalog. Views are shared
// between the store and its listeners and must be treated as read-only.
type View struct {
	// SelectedIDs holds the ids of every catalog entry whose slug is selected.
	SelectedIDs map[string]struct{}
	// Ordered lists the selected entries in selection order. Slugs with no
	// catalog entry are skipped; a slug listed in several subgroups resolves
	// to its first occurrence.
	Ordered   []catalog.Entry
	Subgroups map[string]TriState
	// Catalog is a copy of the source catalog with subgroup flags filled.
	Catalog catalog.Catalog
	// Hidden are selected slugs the current catalog does not contain.
	Hidden []string
}

// Derive computes the view of slugs over cat. It is pure: the same inputs
// always give equal views.
func Derive(cat catalog.Catalog, slugs []string) View {
	selected := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		selected[s] = true
	}

	v := View{
		SelectedIDs: make(map[string]struct{}),
		Subgroups:   make(map[string]TriState),
		Catalog:     cat.Clone(),
	}

	first := make(map[string]catalog.Entry)
	mark := func(fw *catalog.Framework) {
		for i := range fw.Subgroups {
			sg := &fw.Subgroups[i]
			count := 0
			for _, e := range sg.Entries {
				if _, seen := first[e.Slug]; !seen {
					first[e.Slug] = e
				}
				if selected[e.Slug] {
					v.SelectedIDs[e.ID] = struct{}{}
					count++
				}
			}
			state := triStateOf(count, len(sg.Entries))
			sg.Selected = state == Full
			sg.PartiallySelected = state == Partial
			v.Subgroups[sg.ID] = state
		}
	}
	mark(&v.Catalog.GeneralPurpose)
	for i := range v.Catalog.Frameworks {
		mark(&v.Catalog.Frameworks[i])
	}

	for _, s := range slugs {
		if e, ok := first[s]; ok {
			v.Ordered = append(v.Ordered, e)
		} else {
			v.Hidden = append(v.Hidden, s)
		}
	}
	return v
}

// State returns the tri-state of a subgroup; unknown ids are Unselected.
func (v View) State(subgroupID string) TriState {
	return v.Subgroups[subgroupID]
}

// IsSelected reports whether the entry with the given id is selected.
func (v View) IsSelected(entryID string) bool {
	_, ok := v.SelectedIDs[entryID]
	return ok
}

// OrderedSlugs returns the slugs of Ordered.
func (v View) OrderedSlugs() []string {
	out := make([]string, len(v.Ordered))
	for i, e := range v.Ordered {
		out[i] = e.Slug
	}
	return out
}

// Equal compares views by value: SelectedIDs as a set, Ordered and Hidden
// positionally, tri-states per subgroup and the flagged catalog.
func (v View) Equal(o View) bool {
	if len(v.SelectedIDs) != len(o.SelectedIDs) {
		return false
	}
	for id := range v.SelectedIDs {
		if _, ok := o.SelectedIDs[id]; !ok {
			return false
		}
	}
	if !slices.Equal(v.Ordered, o.Ordered) || !slices.Equal(v.Hidden, o.Hidden) {
		return false
	}
	if len(v.Subgroups) != len(o.Subgroups) {
		return false
	}
	for id, st := range v.Subgroups {
		if other, ok := o.Subgroups[id]; !ok || other != st {
			return false
		}
	}
	return reflect.DeepEqual(v.Catalog, o.Catalog)
}
