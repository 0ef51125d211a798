package duckdash

import "github.com/vovakirdan/duckdash/internal/core"

// Skin is a cosmetic player palette. A session reads it once at start.
type Skin struct {
	ID          string
	Name        string
	Body        core.RGB
	Eye         core.RGB
	Beak        core.RGB
	Wing        core.RGB
	UseSprite   bool // Draw the detailed sprite face
	UnlockScore int  // High score needed; 0 means always unlocked
}

// DefaultSkinID is the skin every player starts with.
const DefaultSkinID = "classic"

var skins = []Skin{
	{
		ID: "classic", Name: "Classic Duck", UseSprite: true,
		Body: core.RGB{255, 215, 0}, Eye: core.RGB{0, 0, 0},
		Beak: core.RGB{255, 140, 0}, Wing: core.RGB{230, 190, 0},
	},
	{
		ID: "mallard", Name: "Mallard", UnlockScore: 1000,
		Body: core.RGB{139, 115, 85}, Eye: core.RGB{0, 0, 0},
		Beak: core.RGB{218, 165, 32}, Wing: core.RGB{0, 100, 0},
	},
	{
		ID: "ghost", Name: "Ghost Duck", UnlockScore: 2500,
		Body: core.RGB{230, 230, 255}, Eye: core.RGB{80, 0, 120},
		Beak: core.RGB{190, 190, 220}, Wing: core.RGB{200, 200, 240},
	},
	{
		ID: "lava", Name: "Lava Duck", UnlockScore: 5000,
		Body: core.RGB{200, 40, 20}, Eye: core.RGB{255, 255, 0},
		Beak: core.RGB{255, 120, 0}, Wing: core.RGB{120, 20, 10},
	},
}

// Skins returns the skin catalog in unlock order.
func Skins() []Skin {
	out := make([]Skin, len(skins))
	copy(out, skins)
	return out
}

// SkinByID returns the skin with id, or the default skin.
func SkinByID(id string) (Skin, bool) {
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return skins[0], false
}

// Unlocked reports whether highScore unlocks the skin.
func (s Skin) Unlocked(highScore int) bool {
	return highScore >= s.UnlockScore
}

// UnlockedSkins returns the ids of every skin unlocked by highScore.
func UnlockedSkins(highScore int) []string {
	var ids []string
	for _, s := range skins {
		if s.Unlocked(highScore) {
			ids = append(ids, s.ID)
		}
	}
	return ids
}
