package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kmacinski/desksim/internal/app"
	"github.com/kmacinski/desksim/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Global flags
var (
	debugMode  bool
	configPath string
	noClock    bool
	seed       uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "desksim",
		Short: "A desktop simulator for the terminal",
		Long: `desksim - a desktop in your terminal

Open, drag, maximize and close application windows, switch between them from
the taskbar and keep an eye on the clock. Comes with a calculator, a notepad,
a system monitor and a help window.`,
		Example: `  # Run the desktop
  desksim

  # Run with debug logging
  desksim --debug

  # Place windows reproducibly
  desksim --seed 42

  # List all keybindings
  desksim keybinds list`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Flags().Changed("seed"))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the state directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/desksim/config.toml)")
	rootCmd.Flags().BoolVar(&noClock, "no-clock", false, "Do not run the taskbar clock")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for window placement")

	// Config command group
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage desksim configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long:  `Write the default configuration, overwriting the existing file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			if err := config.Write(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration reset: %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(configPathCmd, configResetCmd)

	// Keybinds command group
	keybindsCmd := &cobra.Command{
		Use:     "keybinds",
		Aliases: []string{"keys", "kb"},
		Short:   "View keybinding configuration",
	}

	keybindsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all keybindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), keybindingsTable(config.NewKeybindRegistry(cfg)))
			return nil
		},
	}

	keybindsCmd.AddCommand(keybindsListCmd)
	rootCmd.AddCommand(configCmd, keybindsCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func run(seeded bool) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	opts := app.Options{
		Config:     cfg,
		ConfigPath: path,
		Logger:     logger,
		NoClock:    noClock,
	}
	if seeded {
		opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	a := app.New(opts)
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion())
	a.SetProgram(p)
	defer a.Cleanup()

	logger.Info("desksim started", "version", version, "config", path)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run desktop: %w", err)
	}
	return nil
}

// newLogger returns a file logger with --debug and a discarding one otherwise
func newLogger() (*slog.Logger, func(), error) {
	if !debugMode {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	path, err := config.LogPath()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Path()
}

func loadConfig() (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// keybindingsTable renders the keybindings, marking customized actions with *
func keybindingsTable(registry *config.KeybindRegistry) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Padding(0, 1)

	rows := [][]string{}
	for _, action := range config.Actions {
		keys := registry.GetKeys(action)
		if len(keys) == 0 {
			continue
		}

		desc := config.ActionDescriptions[action]
		if registry.IsCustomized(action) {
			desc += " *"
		}
		rows = append(rows, []string{strings.Join(keys, ", "), action, desc})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Keys", "Action", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Render("desksim keybindings")
	note := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).Render("* customized in the config file")
	return title + "\n\n" + t.Render() + "\n" + note
}
