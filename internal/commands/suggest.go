package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps "did you mean" lists.
const maxSuggestions = 3

// UnknownError reports names that matched nothing, with close candidates
// for each.
type UnknownError struct {
	Kind        string // "mode", "subgroup" or "selected mode"
	Names       []string
	Suggestions map[string][]string
}

func (e *UnknownError) Error() string {
	var b strings.Builder
	for i, name := range e.Names {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "unknown %s %q", e.Kind, name)
		if s := e.Suggestions[name]; len(s) > 0 {
			fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(quoteAll(s), ", "))
		}
	}
	return b.String()
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}

// Suggest returns up to n candidates close to input, nearest first. A
// candidate qualifies when its edit distance is at most a third of the
// longer string, or when one contains the other.
func Suggest(input string, candidates []string, n int) []string {
	type scored struct {
		name string
		dist int
	}
	in := strings.ToLower(input)
	var hits []scored
	for _, c := range candidates {
		lc := strings.ToLower(c)
		d := levenshtein.ComputeDistance(in, lc)
		limit := max(len(lc), len(in)) / 3
		limit = max(limit, 1)
		if d <= limit || (in != "" && strings.Contains(lc, in)) {
			hits = append(hits, scored{c, d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// unknown builds an UnknownError for names not in known, or nil.
func unknown(kind string, names []string, known map[string]bool, candidates []string) error {
	var missing []string
	for _, n := range names {
		if !known[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	e := &UnknownError{Kind: kind, Names: missing, Suggestions: make(map[string][]string)}
	for _, n := range missing {
		e.Suggestions[n] = Suggest(n, candidates, maxSuggestions)
	}
	return e
}
