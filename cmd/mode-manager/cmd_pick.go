package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/ruminaider/mode-manager/cmd/mode-manager/tui"
	"github.com/spf13/cobra"
)

var pickNoWatch bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose and order modes interactively",
	Long:  "Open the interactive picker. Catalog files are watched and reloaded when they change on disk.",
	Args:  cobra.NoArgs,
	RunE:  runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickNoWatch, "no-watch", false, "do not reload catalogs when they change on disk")
}

func runPick(cmd *cobra.Command, args []string) error {
	// TTY guard: fall back to status when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !term.IsTerminal(os.Stdin.Fd()) {
		return statusCmd.RunE(cmd, args)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	rt, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	model := tui.NewModel(ctx, rt.env)
	if !pickNoWatch {
		changes, err := rt.env.Source.Watch(ctx)
		if err != nil {
			rt.log.Warn("catalog watch disabled", "dir", rt.env.Source.Dir, "error", err)
		} else {
			model = model.WithChanges(changes)
		}
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	final := finalModel.(tui.Model)
	switch {
	case final.Dirty():
		fmt.Fprintln(color.Output, "Exited without applying the latest changes.")
	case final.Committed:
		fmt.Fprintf(color.Output, "%s Wrote %s\n", color.GreenString("✓"), rt.env.Workspace.Path)
	}
	return nil
}
