package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/spf13/cobra"
)

var (
	moveBefore string
	clearYes   bool
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Change the enabled modes without the interactive picker",
	Long:  "Each subcommand edits the selection and writes it to the workspace .roomodes immediately.",
}

var selectAddCmd = &cobra.Command{
	Use:   "add <slug>...",
	Short: "Enable modes, appending them to the end of the order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, func(rt *runEnv) (*commands.EditResult, error) {
			return commands.SelectAdd(cmd.Context(), rt.env, args)
		})
	},
}

var selectRemoveCmd = &cobra.Command{
	Use:     "remove <slug>...",
	Aliases: []string{"rm"},
	Short:   "Disable modes",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, func(rt *runEnv) (*commands.EditResult, error) {
			return commands.SelectRemove(cmd.Context(), rt.env, args)
		})
	},
}

var selectGroupCmd = &cobra.Command{
	Use:   "group <subgroup-id>",
	Short: "Toggle every mode of a subgroup",
	Long:  "Select every mode of the subgroup, or deselect them all when the subgroup is already fully selected. Subgroup ids look like framework-0/subgroup-1; see 'mode-manager list'.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, func(rt *runEnv) (*commands.EditResult, error) {
			return commands.SelectGroup(cmd.Context(), rt.env, args[0])
		})
	},
}

var selectMoveCmd = &cobra.Command{
	Use:   "move <slug> --before <slug>",
	Short: "Move an enabled mode to the position of another",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, func(rt *runEnv) (*commands.EditResult, error) {
			return commands.SelectMove(cmd.Context(), rt.env, args[0], moveBefore)
		})
	},
}

var selectClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Disable every mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes && term.IsTerminal(os.Stdin.Fd()) {
			confirmed := false
			prompt := huh.NewConfirm().
				Title("Disable every mode in this workspace?").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed)
			if err := huh.NewForm(huh.NewGroup(prompt)).Run(); err != nil {
				return fmt.Errorf("prompt cancelled: %w", err)
			}
			if !confirmed {
				fmt.Println("Nothing changed.")
				return nil
			}
		}
		return runEdit(cmd, func(rt *runEnv) (*commands.EditResult, error) {
			return commands.SelectClear(cmd.Context(), rt.env)
		})
	},
}

func init() {
	selectMoveCmd.Flags().StringVar(&moveBefore, "before", "", "slug of the mode to move in front of")
	_ = selectMoveCmd.MarkFlagRequired("before")
	selectClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")

	selectCmd.AddCommand(selectAddCmd)
	selectCmd.AddCommand(selectRemoveCmd)
	selectCmd.AddCommand(selectGroupCmd)
	selectCmd.AddCommand(selectMoveCmd)
	selectCmd.AddCommand(selectClearCmd)
}

func runEdit(cmd *cobra.Command, edit func(*runEnv) (*commands.EditResult, error)) error {
	rt, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	result, err := edit(rt)
	if err != nil {
		return err
	}
	if !result.Changed {
		fmt.Fprintln(color.Output, "Nothing changed.")
		return nil
	}
	fmt.Fprintf(color.Output, "%s Wrote %d mode(s) to %s\n", color.GreenString("✓"), len(result.Committed), rt.env.Workspace.Path)
	for _, o := range result.Committed {
		fmt.Fprintf(color.Output, "  %2d. %s\n", o.Order+1, o.Slug)
	}
	return nil
}
