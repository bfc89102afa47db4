// colourblind is a platformer where platforms are solid only for the colour
// the player is wearing.
//
// Usage:
//
//	colourblind                 - play from the first level
//	colourblind --level level2  - start at a given level
//	colourblind levels          - list the discovered levels
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/colourblind/config"
	"github.com/milk9111/colourblind/level"
	"github.com/milk9111/colourblind/levels"
	"github.com/milk9111/colourblind/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.yaml"

var (
	flagConfig  string
	flagLevel   string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "colourblind",
	Short:        "Colour-keyed platformer",
	SilenceUsage: true,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the discovered levels",
	RunE:  runLevels,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file overlaid on the defaults (default ./config.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug keys and debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also write logs to this rotated file")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "level to start at, e.g. level2")

	rootCmd.AddCommand(levelsCmd)
}

func loadConfig() (config.Config, string, error) {
	path := flagConfig
	if path == "" && exists(defaultConfigPath) {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	if flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	return cfg, path, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	game, err := NewGame(Options{Config: cfg, ConfigPath: path, Level: flagLevel, Debug: flagDebug})
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting", zap.String("config", path), zap.String("render", cfg.Render.Mode), zap.Bool("debug", flagDebug))
	return ebiten.RunGame(game)
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	names, err := level.Discover(levels.FS(cfg.Levels.Dir))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for i, name := range names {
		fmt.Fprintf(out, "  %d  %s\n", i+1, name)
	}
	return nil
}
