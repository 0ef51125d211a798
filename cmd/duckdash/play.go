package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
	"github.com/vovakirdan/duckdash/internal/games/duckdash"
	"github.com/vovakirdan/duckdash/internal/platform/tui"
	"github.com/vovakirdan/duckdash/internal/registry"
	"github.com/vovakirdan/duckdash/internal/storage"
)

var (
	flagSkin string
	flagName string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: duckdash).

Controls:
  Space/Up/W     - Jump (press again in the air to double jump)
  X/Shift+D      - Dash through enemies
  Left/Right/A/D - Move
  P              - Pause
  R              - Restart (after game over)
  Esc/B          - Back (when paused or after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  duckdash play
  duckdash play duckdash_classic
  duckdash play --difficulty hard --skin mallard
  duckdash play --config ./my-duck.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSkin, "skin", "", "Skin id (must be unlocked)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name for the leaderboard (default: your user name)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := config.ProfileDuckDash
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'duckdash list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	skin, err := resolveSkin(store, flagSkin)
	if err != nil {
		return err
	}

	cfg := terminalConfig()
	log.Info("starting game", "game", gameID, "skin", skin, "fps", cfg.TickRate)
	if _, err := tui.Run(game, store, cfg, tui.ModelOptions{Player: playerName(), Skin: skin}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// resolveSkin picks the requested skin, or the stored selection when no
// skin was requested. Requested skins must be unlocked.
func resolveSkin(store *storage.Store, id string) (string, error) {
	if id == "" {
		if store == nil {
			return "", nil
		}
		selected, err := store.SelectedSkin()
		if err != nil {
			log.Warn("cannot read selected skin", "err", err)
		}
		return selected, nil
	}

	skin, ok := duckdash.SkinByID(id)
	if !ok {
		return "", fmt.Errorf("unknown skin %q; run 'duckdash skins' to see them", id)
	}
	if skin.UnlockScore == 0 {
		return id, nil
	}
	if store == nil {
		return "", fmt.Errorf("skin %q needs the scores database to check unlocks", id)
	}
	unlocked, err := store.UnlockedSkins()
	if err != nil {
		return "", fmt.Errorf("reading unlocked skins: %w", err)
	}
	for _, u := range unlocked {
		if u == id {
			return id, nil
		}
	}
	return "", fmt.Errorf("skin %q is locked; score %d to unlock it", id, skin.UnlockScore)
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return ""
}
