// duckdash is a side-scrolling duck runner for the terminal.
//
// Usage:
//
//	duckdash                   - Play Duck Dash
//	duckdash play [game]       - Play a game (duckdash or duckdash_classic)
//	duckdash menu              - Title menu with game and skin picker
//	duckdash serve             - Start SSH server for remote play
//	duckdash scores [game]     - Show the top 5 for a game
//	duckdash skins             - List skins and their unlock scores
//	duckdash config [game]     - Print the default config YAML
//	duckdash list              - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.duckdash/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Log file (default: ~/.duckdash/duckdash.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/games/duckdash"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

// logFile is closed after the command finishes.
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
	Use:   "duckdash",
	Short: "Duck Dash - a runner for your terminal",
	Long: `Duck Dash is a side-scrolling runner. Your duck runs on its own:
jump over hazards, dash through enemies, grab bread and power-ups,
and see how far you get before the lives run out.

Available commands:
  play     - Play a game directly
  menu     - Title menu with game and skin picker
  serve    - Start SSH server for remote play
  scores   - View the top 5
  skins    - List skins
  config   - Print the default config
  list     - Show all available games

Examples:
  duckdash
  duckdash play duckdash_classic --difficulty hard
  duckdash menu
  duckdash serve --ssh :2222
  duckdash scores`,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, []string{config.ProfileDuckDash})
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duckdash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.duckdash/duckdash.log", "Log file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires logging and game settings shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	logger := openLogger(flagLogPath)
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	duckdash.SetLogger(logger)
	duckdash.SetConfigPath(flagConfig)
	duckdash.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openLogger logs to a file so output never corrupts the game screen.
// It falls back to stderr when the file cannot be opened.
func openLogger(path string) *log.Logger {
	opts := log.Options{ReportTimestamp: true, Prefix: "duckdash"}
	if path == "" {
		return log.NewWithOptions(os.Stderr, opts)
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.NewWithOptions(os.Stderr, opts)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.NewWithOptions(os.Stderr, opts)
	}
	logFile = f
	return log.NewWithOptions(f, opts)
}
