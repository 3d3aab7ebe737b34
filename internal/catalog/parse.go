package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGeneralMarkers are matched case-insensitively against framework
// titles. A match routes the framework to Catalog.GeneralPurpose.
var DefaultGeneralMarkers = []string{
	"general",
	"загального",
	"універсальних",
	"общего",
	"универсальных",
}

var (
	frameworkHeaderRe = regexp.MustCompile(`^# \d+\.\s*(.+)`)
	subgroupHeaderRe  = regexp.MustCompile(`^## (\d+\.\d+\s+.+)`)
	subgroupTitleRe   = regexp.MustCompile(`^\d+\.\d+\s+(.+)$`)
	entryBodyRe       = regexp.MustCompile(`^(.+?)\s+\(([^)]+)\)`)
)

// lineKind is the shape of a trimmed, non-blank catalog line.
type lineKind int

const (
	lineOther lineKind = iota
	lineFramework
	lineSubgroup
	lineDescription
	lineEntry
)

// Parser turns catalog text into a Catalog. The zero value uses
// DefaultGeneralMarkers.
type Parser struct {
	GeneralMarkers []string
}

// NewParser returns a parser with the given general markers. With no markers
// the defaults apply.
func NewParser(markers ...string) Parser {
	return Parser{GeneralMarkers: markers}
}

// Parse parses text with the default markers.
func Parse(text string) Catalog {
	return Parser{}.Parse(text)
}

// builder tracks the single-pass parse state: the current framework and
// subgroup, addressed by index so appends never invalidate them.
type builder struct {
	cat      Catalog
	markers  []string
	fw       int // -1 = general purpose, -2 = none
	sg       int // index into the current framework's subgroups, -1 = none
	hasDescr bool
}

const (
	fwGeneral = -1
	fwNone    = -2
)

// Parse converts text into a Catalog. It never fails: unknown lines are
// skipped and empty input yields Empty().
func (p Parser) Parse(text string) Catalog {
	b := &builder{
		cat:     Empty(),
		markers: p.markers(),
		fw:      fwNone,
		sg:      -1,
	}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		b.apply(line)
	}
	return b.cat
}

func (p Parser) markers() []string {
	src := p.GeneralMarkers
	if len(src) == 0 {
		src = DefaultGeneralMarkers
	}
	out := make([]string, 0, len(src))
	for _, m := range src {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// classify picks the shape of a line. Order matters: headers win over
// descriptions, and descriptions are only considered under a subgroup.
func (b *builder) classify(line string) lineKind {
	switch {
	case frameworkHeaderRe.MatchString(line):
		return lineFramework
	case subgroupHeaderRe.MatchString(line):
		return lineSubgroup
	case strings.HasPrefix(line, "-"):
		if b.sg >= 0 {
			return lineEntry
		}
		return lineOther
	case strings.HasPrefix(line, "#"):
		return lineOther
	case b.sg >= 0:
		return lineDescription
	}
	return lineOther
}

func (b *builder) apply(line string) {
	switch b.classify(line) {
	case lineFramework:
		b.startFramework(frameworkHeaderRe.FindStringSubmatch(line)[1])
	case lineSubgroup:
		b.startSubgroup(subgroupHeaderRe.FindStringSubmatch(line)[1])
	case lineDescription:
		if !b.hasDescr {
			b.currentSubgroup().Description = line
			b.hasDescr = true
		}
	case lineEntry:
		b.addEntry(line)
	}
}

func (b *builder) isGeneral(title string) bool {
	lower := strings.ToLower(title)
	for _, m := range b.markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func (b *builder) startFramework(title string) {
	b.sg = -1
	b.hasDescr = false
	if b.isGeneral(title) {
		b.cat.GeneralPurpose.Title = title
		b.fw = fwGeneral
		return
	}
	b.cat.Frameworks = append(b.cat.Frameworks, Framework{
		ID:    fmt.Sprintf("framework-%d", len(b.cat.Frameworks)),
		Title: title,
	})
	b.fw = len(b.cat.Frameworks) - 1
}

func (b *builder) currentFramework() *Framework {
	switch {
	case b.fw == fwGeneral:
		return &b.cat.GeneralPurpose
	case b.fw >= 0:
		return &b.cat.Frameworks[b.fw]
	}
	return nil
}

func (b *builder) currentSubgroup() *Subgroup {
	fw := b.currentFramework()
	if fw == nil || b.sg < 0 {
		return nil
	}
	return &fw.Subgroups[b.sg]
}

func (b *builder) startSubgroup(fullTitle string) {
	fw := b.currentFramework()
	if fw == nil {
		return
	}
	title := fullTitle
	if m := subgroupTitleRe.FindStringSubmatch(fullTitle); m != nil {
		title = m[1]
	}
	fw.Subgroups = append(fw.Subgroups, Subgroup{
		ID:        fmt.Sprintf("%s/subgroup-%d", fw.ID, len(fw.Subgroups)),
		Title:     title,
		FullTitle: fullTitle,
	})
	b.sg = len(fw.Subgroups) - 1
	b.hasDescr = false
}

func (b *builder) addEntry(line string) {
	icon, name, slug, ok := ParseEntryLine(line)
	if !ok {
		return
	}
	fw := b.currentFramework()
	sg := b.currentSubgroup()
	sg.Entries = append(sg.Entries, Entry{
		ID:           fmt.Sprintf("mode-%s-subgroup-%d-%d", fw.ID, b.sg, len(sg.Entries)),
		Slug:         slug,
		Name:         name,
		Icon:         icon,
		DisplayLabel: displayLabel(icon, name),
	})
}

// ParseEntryLine splits a "- [icon] name (slug)" line. ok is false when the
// line is not a list item or lacks a name or slug.
func ParseEntryLine(line string) (icon, name, slug string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "-") {
		return "", "", "", false
	}
	body := strings.TrimSpace(line[1:])

	if ic, rest := splitIcon(body); ic != "" {
		if n, s, found := splitNameSlug(rest); found {
			return ic, n, s, true
		}
	}
	if n, s, found := splitNameSlug(body); found {
		return "", n, s, true
	}
	return "", "", "", false
}

func splitNameSlug(s string) (name, slug string, ok bool) {
	m := entryBodyRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	name = strings.TrimSpace(m[1])
	slug = strings.TrimSpace(m[2])
	if name == "" || slug == "" {
		return "", "", false
	}
	return name, slug, true
}
