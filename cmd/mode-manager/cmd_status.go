package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the modes enabled in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		result, err := commands.Status(cmd.Context(), rt.env)
		if err != nil {
			return err
		}
		printStatus(result)
		return nil
	},
}

func printStatus(result *commands.StatusResult) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Fprintf(color.Output, "%s %s (catalog: %s)\n\n", bold.Sprint("WORKSPACE"), result.WorkspaceFile, result.Locale)

	if len(result.Items) == 0 {
		fmt.Fprintln(color.Output, "No modes enabled. Run 'mode-manager pick' or 'mode-manager select add <slug>'.")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Slug"), bold.Sprint("Mode"))
	for _, it := range result.Items {
		label := it.Label
		if !it.InCatalog {
			label = faint.Sprint("(not in catalog)")
		}
		tbl.AddRow(it.Order+1, it.Slug, label)
	}
	tbl.RightAlign(0)
	fmt.Fprintln(color.Output, tbl)

	if len(result.Missing) > 0 {
		fmt.Fprintln(color.Output)
		fmt.Fprintf(color.Output, "%s %d enabled mode(s) are not in the %s catalog; they are kept as they are.\n",
			color.YellowString("⚠"), len(result.Missing), result.Locale)
	}
}
