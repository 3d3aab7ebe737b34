package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/selection"
	"github.com/spf13/cobra"
)

var listSelectedOnly bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog grouped by framework",
	Long:  "List every mode of the catalog with its selection state. Subgroups show [x] when fully selected and [-] when partially selected.",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		result, err := commands.List(cmd.Context(), rt.env, listSelectedOnly)
		if err != nil {
			return err
		}
		printList(result)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listSelectedOnly, "selected", false, "show only selected modes")
}

func triStateMarker(s selection.TriState) string {
	switch s {
	case selection.Full:
		return color.GreenString("[x]")
	case selection.Partial:
		return color.YellowString("[-]")
	default:
		return "[ ]"
	}
}

func entryMarker(selected bool) string {
	if selected {
		return color.GreenString("[x]")
	}
	return "[ ]"
}

func printList(result *commands.ListResult) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	if len(result.Frameworks) == 0 {
		fmt.Fprintf(color.Output, "Nothing to show for the %s catalog.\n", result.Locale)
		return
	}

	for _, fw := range result.Frameworks {
		fmt.Fprintln(color.Output, bold.Sprint(fw.Title))

		tbl := uitable.New()
		tbl.Separator = "  "
		for _, sg := range fw.Subgroups {
			tbl.AddRow("  "+triStateMarker(sg.State), color.MagentaString(sg.Title)+" "+faint.Sprintf("(%s)", sg.ID), faint.Sprintf("%d/%d", sg.Selected, len(sg.Entries)))
			for _, e := range sg.Entries {
				pos := ""
				if e.Position > 0 {
					pos = faint.Sprintf("#%d", e.Position)
				}
				tbl.AddRow("    "+entryMarker(e.Selected), e.Label+" "+faint.Sprintf("(%s)", e.Slug), pos)
			}
		}
		fmt.Fprintln(color.Output, tbl)
		fmt.Fprintln(color.Output)
	}
	fmt.Fprintf(color.Output, "%d/%d modes selected (%s)\n", result.Selected, result.Total, result.Locale)
}
