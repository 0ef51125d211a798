package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckdash/internal/games/duckdash"
	"github.com/vovakirdan/duckdash/internal/storage"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List skins and their unlock scores",
	Long: `List every duck skin, whether it is unlocked and which one is selected.
Skins unlock when a single run reaches their score.

Examples:
  duckdash skins
  duckdash skins select mallard`,
	Args: cobra.NoArgs,
	RunE: runSkins,
}

var skinsSelectCmd = &cobra.Command{
	Use:   "select <skin>",
	Short: "Select an unlocked skin",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkinsSelect,
}

func init() {
	skinsCmd.AddCommand(skinsSelectCmd)
}

func runSkins(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	ids, err := store.UnlockedSkins()
	if err != nil {
		return err
	}
	unlocked := map[string]bool{duckdash.DefaultSkinID: true}
	for _, id := range ids {
		unlocked[id] = true
	}
	selected, err := store.SelectedSkin()
	if err != nil {
		return err
	}
	if selected == "" {
		selected = duckdash.DefaultSkinID
	}

	fmt.Printf("  %-2s %-10s  %-14s  %s\n", "", "ID", "Name", "Unlock")
	for _, s := range duckdash.Skins() {
		mark := ""
		if s.ID == selected {
			mark = "*"
		}
		status := fmt.Sprintf("%d points", s.UnlockScore)
		if unlocked[s.ID] {
			status = "unlocked"
		}
		fmt.Printf("  %-2s %-10s  %-14s  %s\n", mark, s.ID, s.Name, status)
	}
	return nil
}

func runSkinsSelect(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	id, err := resolveSkin(store, args[0])
	if err != nil {
		return err
	}
	if err := store.SelectSkin(id); err != nil {
		return err
	}
	fmt.Printf("Selected %s.\n", id)
	return nil
}
