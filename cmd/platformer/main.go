// platformer plays side-scrolling levels in the terminal.
//
// Usage:
//
//	platformer list                 - List available levels
//	platformer play [level]         - Play a level (default 1-1)
//	platformer menu                 - Pick levels interactively
//	platformer scores <level>       - Show high scores for a level
//	platformer replay list          - List recorded runs
//	platformer replay run <id>      - Re-simulate or watch a recorded run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/scores.db)
//	--config <path>       - Custom platformer.yaml
//	--difficulty <name>   - easy, normal or hard
//	--levels-dir <path>   - Extra YAML levels to register
//	--log-file <path>     - Write diagnostics to a file
//	--log-level <level>   - debug, info, warn or error
//	--hold <ticks>        - How long a key press stays down
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogFile    string
	flagLogLevel   string
	flagHoldTicks  int
)

// logger is configured by the root command before any subcommand runs.
var logger = log.New(io.Discard)

var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - run and jump through levels in your terminal",
	Long: `Platformer is a side-scrolling platform game for the terminal.

Available commands:
  list     - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  scores   - View high scores
  replay   - List and re-run recorded runs

Examples:
  platformer list
  platformer play 1-1
  platformer play --level-file ./my-level.yaml
  platformer menu --difficulty easy
  platformer replay run 3 --watch`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory of extra YAML levels")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a key press stays down")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// setup applies the global flags shared by every subcommand.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	if err := setupLogging(); err != nil {
		return err
	}
	platformer.SetLogger(logger)
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)

	if flagLevelsDir != "" {
		registerLevels(flagLevelsDir)
	}
	return nil
}

func setupLogging() error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           lvl,
	})
	return nil
}

// registerLevels adds every valid level file under dir to the registry.
// Broken files are reported and skipped.
func registerLevels(dir string) {
	levels, skipped, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	for _, err := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipping level: %v\n", err)
	}
	for _, lvl := range levels {
		if err := platformer.RegisterLevel(lvl); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		logger.Debug("registered level", "id", lvl.ID, "dir", dir)
	}
}
