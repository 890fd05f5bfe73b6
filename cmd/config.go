package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mosamy007/TrendyRepo/config"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// NewCmdConfig creates the config command with subcommands.
func NewCmdConfig() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show or manage configuration.

When run without arguments, shows the current merged configuration.

Subcommands:
  path  Show config file locations
  show  Show current merged config (same as bare 'trendyrepo config')
  set   Set a configuration value`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format (yaml, json)")

	cmd.AddCommand(NewCmdConfigPath())
	cmd.AddCommand(NewCmdConfigShow())
	cmd.AddCommand(NewCmdConfigSet())

	return cmd
}

// NewCmdConfigPath creates the config path subcommand.
func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show config file locations",
		Long:  `Show the paths to global and local config files and indicate which exist.`,
		RunE:  runConfigPath,
	}
}

// NewCmdConfigShow creates the config show subcommand.
func NewCmdConfigShow() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current merged configuration",
		Long:  `Show the current configuration after merging defaults, global, and local configs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "yaml", "Output format (yaml, json)")

	return cmd
}

// NewCmdConfigSet creates the config set subcommand.
func NewCmdConfigSet() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Available keys:
  format    - Default output format (table, json, markdown)
  window    - Default time window (daily, weekly, monthly)
  language  - Default language filter (empty string clears it)`,
		Args: cobra.ExactArgs(2),
		RunE: runConfigSet,
	}
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	globalPath := config.ConfigPath()
	localPath := config.LocalConfigPath()

	fmt.Println("Configuration file locations:")
	fmt.Println()

	globalStatus := "not found"
	if _, err := os.Stat(globalPath); err == nil {
		globalStatus = "exists"
	}
	fmt.Printf("  Global: %s (%s)\n", globalPath, globalStatus)

	localStatus := "not found"
	if _, err := os.Stat(localPath); err == nil {
		localStatus = "exists"
	}
	fmt.Printf("  Local:  %s (%s)\n", localPath, localStatus)

	fmt.Println()
	fmt.Println("Load order: defaults -> global -> local (local overrides global)")

	return nil
}

func runConfigShow(format string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch format {
	case "yaml":
		yamlStr, err := cfg.ToYAML()
		if err != nil {
			return err
		}
		fmt.Print(yamlStr)
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("invalid format: %s (must be yaml or json)", format)
	}

	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key := args[0]
	value := args[1]

	switch key {
	case "token":
		return fmt.Errorf("tokens cannot be stored in config files for security reasons. Set the GITHUB_TOKEN environment variable instead")
	case "format":
		if value != "table" && value != "json" && value != "markdown" {
			return fmt.Errorf("invalid format: %s (must be table, json, or markdown)", value)
		}
		if err := cfg.SetDefaultFormat(value); err != nil {
			return err
		}
		fmt.Printf("Default format set to %s.\n", value)
	case "window":
		window, err := timewindow.Parse(value)
		if err != nil {
			return err
		}
		if err := cfg.SetDefaultWindow(string(window)); err != nil {
			return err
		}
		fmt.Printf("Default window set to %s.\n", window)
	case "language":
		if err := cfg.SetDefaultLanguage(value); err != nil {
			return err
		}
		if value == "" {
			fmt.Println("Default language filter cleared.")
		} else {
			fmt.Printf("Default language set to %s.\n", value)
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	return nil
}
