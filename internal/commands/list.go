package commands

import (
	"context"

	"github.com/ruminaider/mode-manager/internal/catalog"
	"github.com/ruminaider/mode-manager/internal/selection"
)

// EntryRow is one mode in a listing.
type EntryRow struct {
	Slug     string
	Label    string
	Selected bool
	Position int // 1-based position in the selection, 0 when not selected
}

// SubgroupRow is one subgroup in a listing.
type SubgroupRow struct {
	ID          string
	Title       string
	Description string
	State       selection.TriState
	Selected    int
	Entries     []EntryRow
}

// FrameworkRow is one framework in a listing.
type FrameworkRow struct {
	ID        string
	Title     string
	Subgroups []SubgroupRow
}

type ListResult struct {
	Locale     string
	Frameworks []FrameworkRow
	Selected   int
	Total      int
}

// List walks the loaded catalog with the current selection. With
// selectedOnly, unselected entries and subgroups without a selection are
// left out.
func List(_ context.Context, env *Env, selectedOnly bool) (*ListResult, error) {
	ctrl := env.Controller
	view := ctrl.Store().View()

	positions := make(map[string]int, len(view.Ordered))
	for i, e := range view.Ordered {
		positions[e.Slug] = i + 1
	}

	result := &ListResult{
		Locale:   ctrl.Locale(),
		Selected: len(view.Ordered),
		Total:    view.Catalog.EntryCount(),
	}
	for _, fw := range view.Catalog.AllFrameworks() {
		row := FrameworkRow{ID: fw.ID, Title: frameworkTitle(fw)}
		for _, sg := range fw.Subgroups {
			sr := SubgroupRow{
				ID:          sg.ID,
				Title:       sg.FullTitle,
				Description: sg.Description,
				State:       view.State(sg.ID),
			}
			for _, e := range sg.Entries {
				er := EntryRow{
					Slug:     e.Slug,
					Label:    e.DisplayLabel,
					Selected: view.IsSelected(e.ID),
					Position: positions[e.Slug],
				}
				if er.Selected {
					sr.Selected++
				}
				if selectedOnly && !er.Selected {
					continue
				}
				sr.Entries = append(sr.Entries, er)
			}
			if selectedOnly && sr.Selected == 0 {
				continue
			}
			row.Subgroups = append(row.Subgroups, sr)
		}
		if len(row.Subgroups) == 0 {
			continue
		}
		result.Frameworks = append(result.Frameworks, row)
	}
	return result, nil
}

func frameworkTitle(fw catalog.Framework) string {
	if fw.Title != "" {
		return fw.Title
	}
	if fw.ID == catalog.GeneralPurposeID {
		return "General purpose"
	}
	return fw.ID
}
