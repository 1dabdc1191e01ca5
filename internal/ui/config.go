package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidcortes/horario/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View configuration",
		Long: `Display the active configuration.

If no config file exists, creates one with default values.

Example:
  horario config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow()
		},
	}
}

func runConfigShow() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("Schedule"))
	fmt.Printf("  day_start: %s\n", cfg.Schedule.DayStart)
	fmt.Printf("  day_end:   %s\n", cfg.Schedule.DayEnd)

	fmt.Println(formatHeader("Server"))
	fmt.Printf("  base_url:  %s\n", cfg.Server.BaseURL)
	fmt.Printf("  listen:    %s\n", cfg.Server.Listen)

	fmt.Println(formatHeader("Storage"))
	fmt.Printf("  db_path:   %s\n", cfg.Storage.DBPath)

	fmt.Println(formatHeader("UI"))
	fmt.Printf("  theme:     %s\n", cfg.UI.Theme)

	fmt.Println()
	fmt.Println(formatMuted("Environment overrides: HORARIO_DAY_START, HORARIO_DAY_END, HORARIO_BASE_URL, HORARIO_LISTEN, HORARIO_DB_PATH, HORARIO_UI_THEME"))
}
