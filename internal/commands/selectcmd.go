package commands

import (
	"context"
	"sort"

	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/session"
)

// EditResult is the committed selection after an edit.
type EditResult struct {
	Committed []session.OrderedSlug
	Changed   bool
}

func commit(ctx context.Context, env *Env) (*EditResult, error) {
	ctrl := env.Controller
	if !ctrl.Dirty() {
		return &EditResult{Committed: orderedFrom(ctrl.Baseline())}, nil
	}
	out, err := ctrl.Commit(ctx)
	if err != nil {
		return nil, err
	}
	return &EditResult{Committed: out, Changed: true}, nil
}

func orderedFrom(slugs []string) []session.OrderedSlug {
	out := make([]session.OrderedSlug, len(slugs))
	for i, s := range slugs {
		out[i] = session.OrderedSlug{Slug: s, Order: i}
	}
	return out
}

func catalogSlugs(cat catalog.Catalog) (map[string]bool, []string) {
	set := cat.Slugs()
	list := make([]string, 0, len(set))
	for s := range set {
		list = append(list, s)
	}
	sort.Strings(list)
	return set, list
}

func selectedSlugs(env *Env) (map[string]bool, []string) {
	list := env.Controller.Store().Slugs()
	set := make(map[string]bool, len(list))
	for _, s := range list {
		set[s] = true
	}
	return set, list
}

// SelectAdd appends slugs to the selection and commits. Every slug must
// exist in the loaded catalog.
func SelectAdd(ctx context.Context, env *Env, slugs []string) (*EditResult, error) {
	known, candidates := catalogSlugs(env.Controller.Store().Catalog())
	if err := unknown("mode", slugs, known, candidates); err != nil {
		return nil, err
	}
	if err := env.Controller.Handle(ctx, session.SelectMany{Slugs: slugs, Selected: true}); err != nil {
		return nil, err
	}
	return commit(ctx, env)
}

// SelectRemove drops slugs from the selection and commits. Slugs that are
// not selected are an error, so stale slugs outside the catalog can still
// be removed.
func SelectRemove(ctx context.Context, env *Env, slugs []string) (*EditResult, error) {
	known, candidates := selectedSlugs(env)
	if err := unknown("selected mode", slugs, known, candidates); err != nil {
		return nil, err
	}
	if err := env.Controller.Handle(ctx, session.SelectMany{Slugs: slugs, Selected: false}); err != nil {
		return nil, err
	}
	return commit(ctx, env)
}

// SelectGroup toggles a whole subgroup: it selects every entry, or clears
// them when all are already selected.
func SelectGroup(ctx context.Context, env *Env, subgroupID string) (*EditResult, error) {
	cat := env.Controller.Store().Catalog()
	known := make(map[string]bool)
	var candidates []string
	for _, fw := range cat.AllFrameworks() {
		for _, sg := range fw.Subgroups {
			if len(sg.Entries) > 0 {
				known[sg.ID] = true
				candidates = append(candidates, sg.ID)
			}
		}
	}
	if err := unknown("subgroup", []string{subgroupID}, known, candidates); err != nil {
		return nil, err
	}
	env.Controller.ToggleSubgroup(subgroupID)
	return commit(ctx, env)
}

// SelectMove moves slug to the position of before and commits. Both must be
// selected and present in the loaded catalog.
func SelectMove(ctx context.Context, env *Env, slug, before string) (*EditResult, error) {
	view := env.Controller.Store().View()
	ids := make(map[string]string, len(view.Ordered))
	known := make(map[string]bool, len(view.Ordered))
	candidates := make([]string, 0, len(view.Ordered))
	for _, e := range view.Ordered {
		ids[e.Slug] = e.ID
		known[e.Slug] = true
		candidates = append(candidates, e.Slug)
	}
	if err := unknown("selected mode", []string{slug, before}, known, candidates); err != nil {
		return nil, err
	}
	if err := env.Controller.Handle(ctx, session.Reorder{MovedID: ids[slug], TargetID: ids[before]}); err != nil {
		return nil, err
	}
	return commit(ctx, env)
}

// SelectClear deselects everything and commits.
func SelectClear(ctx context.Context, env *Env) (*EditResult, error) {
	all := env.Controller.Store().Slugs()
	if err := env.Controller.Handle(ctx, session.SelectMany{Slugs: all, Selected: false}); err != nil {
		return nil, err
	}
	return commit(ctx, env)
}
