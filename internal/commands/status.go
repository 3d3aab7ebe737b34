package commands

import (
	"context"
)

// StatusItem is one committed mode.
type StatusItem struct {
	Order     int
	Slug      string
	Label     string // display label from the catalog, "" when not in it
	InCatalog bool
}

type StatusResult struct {
	Locale        string
	WorkspaceFile string
	Items         []StatusItem
	// Missing lists committed slugs the current catalog does not contain.
	Missing []string
}

// Status reports the committed selection of the workspace against the
// loaded catalog.
func Status(_ context.Context, env *Env) (*StatusResult, error) {
	ctrl := env.Controller
	cat := ctrl.Store().Catalog()

	result := &StatusResult{
		Locale:        ctrl.Locale(),
		WorkspaceFile: env.Workspace.Path,
	}
	for i, slug := range ctrl.Baseline() {
		item := StatusItem{Order: i, Slug: slug}
		if e, ok := cat.FindBySlug(slug); ok {
			item.Label = e.DisplayLabel
			item.InCatalog = true
		} else {
			result.Missing = append(result.Missing, slug)
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}
