package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckdash/internal/platform/tui"
	"github.com/vovakirdan/duckdash/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start Duck Dash with the title menu.

Pick a game with Up/Down, cycle unlocked skins with Left/Right and press
Enter to play. Esc after a game over brings you back to the menu.

Controls:
  Up/Down/j/k     - Pick game
  Left/Right/h/l  - Pick skin
  Enter/Space     - Play
  Tab             - Top 5
  Q/Esc           - Quit

Examples:
  duckdash menu
  duckdash menu --fps 30
  duckdash menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", "", "Name for the leaderboard (default: your user name)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, playerName(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, store, cfg, tui.ModelOptions{
			Player: playerName(),
			Skin:   menuResult.SkinID,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		cfg = result.Config
		if !result.BackToMenu {
			return nil
		}
	}
}
