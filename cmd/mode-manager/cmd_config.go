package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/fatih/color"
	"github.com/ruminaider/mode-manager/internal/commands"
	"github.com/ruminaider/mode-manager/internal/config"
	"github.com/ruminaider/mode-manager/internal/stacks"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the mode-manager configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file",
	Long:  "Write ~/.mode-manager/config.yaml. On a terminal the locale and workspace are asked for; flags given on the command line are used as they are.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if localeFlag != "" {
			cfg.Locale = stacks.SanitizeLocale(localeFlag)
		}

		if term.IsTerminal(os.Stdin.Fd()) {
			if err := promptConfig(cmd, &cfg); err != nil {
				return err
			}
		}

		path := configPath()
		if err := commands.InitConfig(path, cfg, configForce); err != nil {
			return err
		}
		fmt.Fprintf(color.Output, "%s Wrote %s\n", color.GreenString("✓"), path)

		st := commands.DetectState(path, cfg)
		if !st.CatalogDirFound {
			fmt.Fprintf(color.Output, "%s Catalog directory %s does not exist yet. Put stacks_by_framework_<locale>.md files there.\n",
				color.YellowString("⚠"), cfg.CatalogPath())
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n%s", configPath(), data)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// promptConfig asks for the settings whose flags were not given.
func promptConfig(cmd *cobra.Command, cfg *config.Config) error {
	var fields []huh.Field
	if !cmd.Flags().Changed("locale") {
		opts := make([]huh.Option[string], 0, len(stacks.Locales()))
		for _, l := range stacks.Locales() {
			opts = append(opts, huh.NewOption(l, l))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Catalog locale").
			Options(opts...).
			Value(&cfg.Locale))
	}
	if !cmd.Flags().Changed("workspace") {
		fields = append(fields, huh.NewInput().
			Title("Workspace directory").
			Description("Directory whose .roomodes file is edited").
			Placeholder(".").
			Value(&cfg.Workspace))
	}
	if !cmd.Flags().Changed("catalog-dir") {
		fields = append(fields, huh.NewInput().
			Title("Catalog directory").
			Placeholder("~/.mode-manager/catalog").
			Value(&cfg.CatalogDir))
	}
	if len(fields) == 0 {
		return nil
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return fmt.Errorf("prompt cancelled: %w", err)
	}
	if cfg.Workspace == "" {
		cfg.Workspace = "."
	}
	return nil
}
