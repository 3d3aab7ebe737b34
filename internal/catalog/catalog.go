// Package catalog holds the mode catalog model and the parser that builds it
// from a stacks_by_framework markdown document.
package catalog

// GeneralPurposeID is the ID of the distinguished general-purpose bucket.
const GeneralPurposeID = "general-purpose"

// Entry is one selectable mode.
type Entry struct {
	ID           string // structural id, unique within one parsed catalog
	Slug         string // stable external identity
	Name         string
	Icon         string // "" when the line had no icon
	Description  string
	DisplayLabel string // Icon + " " + Name, or Name
}

// Subgroup is a numbered group of entries inside a framework ("## 2.1 React").
// Selected and PartiallySelected are derived from a selection and are never
// set by the parser.
type Subgroup struct {
	ID                string
	Title             string
	FullTitle         string // title including the "N.M" prefix
	Description       string
	Entries           []Entry
	Selected          bool
	PartiallySelected bool
}

// Framework is a top-level section of the catalog ("# 2. React stacks").
type Framework struct {
	ID          string
	Title       string
	Description string
	Subgroups   []Subgroup
}

// Catalog is the parsed document. GeneralPurpose is always present, possibly
// with zero subgroups.
type Catalog struct {
	GeneralPurpose Framework
	Frameworks     []Framework
}

// Empty returns a catalog with an empty general-purpose bucket and no frameworks.
func Empty() Catalog {
	return Catalog{GeneralPurpose: Framework{ID: GeneralPurposeID}}
}

// displayLabel builds the label shown for an entry.
func displayLabel(icon, name string) string {
	if icon == "" {
		return name
	}
	return icon + " " + name
}

// AllFrameworks returns the general-purpose bucket followed by every framework.
func (c Catalog) AllFrameworks() []Framework {
	out := make([]Framework, 0, len(c.Frameworks)+1)
	out = append(out, c.GeneralPurpose)
	return append(out, c.Frameworks...)
}

// Entries returns every entry in catalog order.
func (c Catalog) Entries() []Entry {
	var out []Entry
	for _, fw := range c.AllFrameworks() {
		for _, sg := range fw.Subgroups {
			out = append(out, sg.Entries...)
		}
	}
	return out
}

// EntryCount returns the number of entries across all subgroups.
func (c Catalog) EntryCount() int {
	n := 0
	for _, fw := range c.AllFrameworks() {
		for _, sg := range fw.Subgroups {
			n += len(sg.Entries)
		}
	}
	return n
}

// IsEmpty reports whether the catalog has no subgroups at all.
func (c Catalog) IsEmpty() bool {
	if len(c.GeneralPurpose.Subgroups) > 0 {
		return false
	}
	for _, fw := range c.Frameworks {
		if len(fw.Subgroups) > 0 {
			return false
		}
	}
	return true
}

// FindBySlug returns the first entry carrying slug, searching the
// general-purpose bucket first.
func (c Catalog) FindBySlug(slug string) (Entry, bool) {
	for _, fw := range c.AllFrameworks() {
		for _, sg := range fw.Subgroups {
			for _, e := range sg.Entries {
				if e.Slug == slug {
					return e, true
				}
			}
		}
	}
	return Entry{}, false
}

// FindByID returns the entry with the given structural id.
func (c Catalog) FindByID(id string) (Entry, bool) {
	for _, fw := range c.AllFrameworks() {
		for _, sg := range fw.Subgroups {
			for _, e := range sg.Entries {
				if e.ID == id {
					return e, true
				}
			}
		}
	}
	return Entry{}, false
}

// FindSubgroup returns the subgroup with the given id.
func (c Catalog) FindSubgroup(id string) (Subgroup, bool) {
	for _, fw := range c.AllFrameworks() {
		for _, sg := range fw.Subgroups {
			if sg.ID == id {
				return sg, true
			}
		}
	}
	return Subgroup{}, false
}

// SubgroupSlugs returns the slugs of a subgroup's entries in order, or nil if
// the subgroup does not exist.
func (c Catalog) SubgroupSlugs(id string) []string {
	sg, ok := c.FindSubgroup(id)
	if !ok {
		return nil
	}
	slugs := make([]string, 0, len(sg.Entries))
	for _, e := range sg.Entries {
		slugs = append(slugs, e.Slug)
	}
	return slugs
}

// Slugs returns the set of every slug in the catalog.
func (c Catalog) Slugs() map[string]bool {
	set := make(map[string]bool)
	for _, e := range c.Entries() {
		set[e.Slug] = true
	}
	return set
}

// Clone returns a deep copy so derived views can set subgroup flags without
// touching the parsed value.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		GeneralPurpose: c.GeneralPurpose.clone(),
	}
	if c.Frameworks != nil {
		out.Frameworks = make([]Framework, len(c.Frameworks))
		for i, fw := range c.Frameworks {
			out.Frameworks[i] = fw.clone()
		}
	}
	return out
}

func (f Framework) clone() Framework {
	out := f
	if f.Subgroups != nil {
		out.Subgroups = make([]Subgroup, len(f.Subgroups))
		for i, sg := range f.Subgroups {
			cp := sg
			if sg.Entries != nil {
				cp.Entries = append([]Entry(nil), sg.Entries...)
			}
			out.Subgroups[i] = cp
		}
	}
	return out
}
